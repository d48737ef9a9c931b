package catalog

// Layout constants for the browser chrome.
const (
	listWidth = 28

	// Border and padding around the preview pane.
	previewChromeWidth  = 6
	previewChromeHeight = 6

	minPreviewWidth  = 20
	minPreviewHeight = 6

	// Terminal-cell origin of the preview body: the list, then the pane's
	// border and padding; vertically also the description header and its
	// blank line.
	previewBodyLeft = listWidth + 3
	previewBodyTop  = 4
)
