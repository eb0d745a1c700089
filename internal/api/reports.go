package api

import (
	"context"
	"net/http"
	"net/url"

	"reportboard/client/internal/models"
)

// ListReports fetches every report, in the order the backend returns them.
func (c *Client) ListReports(ctx context.Context) ([]models.Report, error) {
	resp, err := c.do(ctx, http.MethodGet, "/reports", nil)
	if err != nil {
		return nil, err
	}
	if err := resp.expect(http.StatusOK); err != nil {
		return nil, err
	}

	var reports []models.Report
	if err := resp.decode("/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// SubmitReport creates a report. The returned value is the server's copy,
// with the assigned id and nickname and with escaped text.
func (c *Client) SubmitReport(ctx context.Context, in models.NewReport) (*models.Report, error) {
	resp, err := c.do(ctx, http.MethodPost, "/report", in)
	if err != nil {
		return nil, err
	}
	if err := resp.expect(http.StatusCreated); err != nil {
		return nil, err
	}

	var report models.Report
	if err := resp.decode("/report", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// LikeReport adds the session user's like and returns the new count.
// The call is not idempotent on the wire.
func (c *Client) LikeReport(ctx context.Context, id models.ReportID) (int, error) {
	if id == "" {
		return 0, ErrEmptyReportID
	}
	path := "/report/" + url.PathEscape(id.String()) + "/like"
	resp, err := c.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return 0, err
	}
	if err := resp.expect(http.StatusOK); err != nil {
		return 0, err
	}

	var res models.LikeResult
	if err := resp.decode(path, &res); err != nil {
		return 0, err
	}
	return res.Likes, nil
}
