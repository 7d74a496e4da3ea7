// Package footer provides the table-footer pagination control. The control is
// a selector-only view model: it carries the page-size choices computed by the
// sizeopts package together with the current paging state, and leaves the
// actual rendering to the host. It intentionally exposes no "x–y of z" summary
// text and no prev/next actions.
package footer

import "github.com/rise-and-shine/tablekit/sizeopts"

// Config carries the inputs for building a footer control.
type Config struct {
	// TotalCount is the number of rows available to paginate.
	TotalCount int
	// Page is the current page index.
	Page int
	// PageSize is the currently selected page size.
	PageSize int

	// OnPageChange is invoked verbatim when a page is selected.
	OnPageChange func(page int)
	// OnPageSizeChange is invoked verbatim when a page size is selected.
	OnPageSizeChange func(size int)
}

// Control is the renderable footer state handed to the host widget.
type Control struct {
	Options    []sizeopts.Option `json:"options"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalCount int               `json:"total_count"`

	onPageChange     func(int)
	onPageSizeChange func(int)
}

// New builds a footer control for the given configuration.
//
// When the computed option set has one entry or none there is nothing useful
// to select, so New returns nil and the caller renders no footer at all.
func New(cfg Config) *Control {
	options := sizeopts.Generate(cfg.TotalCount)
	if len(options) <= 1 {
		return nil
	}

	return &Control{
		Options:          options,
		Page:             cfg.Page,
		PageSize:         cfg.PageSize,
		TotalCount:       cfg.TotalCount,
		onPageChange:     cfg.OnPageChange,
		onPageSizeChange: cfg.OnPageSizeChange,
	}
}

// SelectPage forwards a page selection to the configured callback.
func (c *Control) SelectPage(page int) {
	if c.onPageChange != nil {
		c.onPageChange(page)
	}
}

// SelectPageSize forwards a page-size selection to the configured callback.
func (c *Control) SelectPageSize(size int) {
	if c.onPageSizeChange != nil {
		c.onPageSizeChange(size)
	}
}
