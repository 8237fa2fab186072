package layout

// PanelLayout holds calculated search panel dimensions.
type PanelLayout struct {
	ListWidth    int
	PreviewWidth int
	ListHeight   int
}

// CalculatePanelLayout computes the result list and preview dimensions.
func CalculatePanelLayout(terminalWidth, terminalHeight int, cfg PanelConfig) PanelLayout {
	listWidth := terminalWidth * cfg.ListWidthPercent / 100
	previewWidth := terminalWidth * cfg.PreviewWidthPercent / 100

	listHeight := terminalHeight - cfg.HeaderReduction
	if listHeight < cfg.MinListHeight {
		listHeight = cfg.MinListHeight
	}

	return PanelLayout{
		ListWidth:    listWidth,
		PreviewWidth: previewWidth,
		ListHeight:   listHeight,
	}
}

// CalculateRowWidth computes the width available for row content.
func CalculateRowWidth(listWidth int, cfg PanelConfig) int {
	width := listWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
