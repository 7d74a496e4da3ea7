// Package tableapi provides Fiber handlers for serving paginated table
// listings and the table-footer pagination control to host widgets.
package tableapi

import (
	"context"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"github.com/rise-and-shine/tablekit/footer"
	"github.com/rise-and-shine/tablekit/pagination"
	"github.com/rise-and-shine/tablekit/tablestore"
)

const codeCountFailed = "ROW_COUNT_FAILED"

// Counter reports the total number of rows available to paginate.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// NewListHandler returns a handler that serves one page of rows from the
// store, including the pagination metadata and footer size options.
//
// Recognized query parameters: page_number, page_size and order
// (e.g. "name:asc,created_at:desc", restricted to allowedOrderFields).
func NewListHandler[E any](
	store *tablestore.Store[E],
	allowedOrderFields ...string,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := parseRequest(c)
		req.Normalize()

		orders := tablestore.ParseOrder(c.Query("order"), allowedOrderFields...)

		resp, err := store.ListPage(c.UserContext(), req, orders...)
		if err != nil {
			return errx.Wrap(err)
		}

		return c.JSON(resp)
	}
}

// NewFooterHandler returns a handler that serves the footer control for a
// table. When the control is suppressed (one page-size option or none) the
// handler responds with 204 No Content and the host renders no footer.
func NewFooterHandler(counter Counter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		totalCount, err := counter.Count(c.UserContext())
		if err != nil {
			return errx.Wrap(err, errx.WithCode(codeCountFailed))
		}

		req := parseRequest(c)
		req.Normalize()

		ctrl := footer.New(footer.Config{
			TotalCount: int(totalCount),
			Page:       req.PageNumber,
			PageSize:   req.PageSize,
		})
		if ctrl == nil {
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.JSON(ctrl)
	}
}

// parseRequest reads the paging parameters from the query string.
func parseRequest(c *fiber.Ctx) pagination.Request {
	return pagination.Request{
		PageNumber: cast.ToInt(c.Query("page_number")),
		PageSize:   cast.ToInt(c.Query("page_size")),
	}
}
