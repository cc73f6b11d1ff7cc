package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/dashboard"
	"github.com/openkcm/employee-dashboard/internal/employee"
	"github.com/openkcm/employee-dashboard/internal/openapi"
	"github.com/openkcm/employee-dashboard/internal/preferences"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
	"github.com/openkcm/employee-dashboard/internal/session"
	"github.com/openkcm/employee-dashboard/internal/views"
)

var errInvalidCredentials = &serviceerr.Error{Err: serviceerr.CodeUnauthorized, Description: "Invalid username or password."}

// openAPIServer maps the API onto the dashboard instance of the calling
// client, which the client middleware stores in the request context.
type openAPIServer struct{}

// Ensure openAPIServer implements [openapi.StrictServerInterface]
var _ openapi.StrictServerInterface = (*openAPIServer)(nil)

func newOpenAPIServer() *openAPIServer {
	return &openAPIServer{}
}

// GetChart implements openapi.StrictServerInterface.
func (s *openAPIServer) GetChart(ctx context.Context, request openapi.GetChartRequestObject) (openapi.GetChartResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetChartdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	limit := 0
	if request.Params.Limit != nil {
		if *request.Params.Limit <= 0 {
			body, status := newBadRequest("limit must be a positive integer")
			return openapi.GetChartdefaultJSONResponse{Body: body, StatusCode: status}, nil
		}
		limit = *request.Params.Limit
	}

	view, err := app.Chart(ctx, limit)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetChartdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	bars := make([]openapi.SalaryBar, 0, len(view.Bars))
	for _, bar := range view.Bars {
		bars = append(bars, openapi.SalaryBar{Name: bar.Name, Salary: bar.Salary})
	}

	status := toFetchStatus(view.Status)
	return openapi.GetChart200JSONResponse{
		Bars:      bars,
		Error:     status.Error,
		State:     status.State,
		UpdatedAt: status.UpdatedAt,
	}, nil
}

// ListEmployees implements openapi.StrictServerInterface. Without q the
// debounced search query filters the list.
func (s *openAPIServer) ListEmployees(ctx context.Context, request openapi.ListEmployeesRequestObject) (openapi.ListEmployeesResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.ListEmployeesdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	var view dashboard.ListView
	if request.Params.Q != nil {
		view, err = app.List(ctx, *request.Params.Q)
	} else {
		view, err = app.AppliedList(ctx)
	}
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.ListEmployeesdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	status := toFetchStatus(view.Status)
	return openapi.ListEmployees200JSONResponse{
		Employees: toEmployees(view.Employees),
		Error:     status.Error,
		Query:     view.Query,
		State:     status.State,
		Total:     view.Total,
		UpdatedAt: status.UpdatedAt,
	}, nil
}

// GetLastEmployee implements openapi.StrictServerInterface.
func (s *openAPIServer) GetLastEmployee(ctx context.Context, _ openapi.GetLastEmployeeRequestObject) (openapi.GetLastEmployeeResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetLastEmployeedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	view, err := app.Employee(ctx, "")
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetLastEmployeedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.GetLastEmployee200JSONResponse(toDetailView(view)), nil
}

// RefreshEmployees implements openapi.StrictServerInterface.
func (s *openAPIServer) RefreshEmployees(ctx context.Context, _ openapi.RefreshEmployeesRequestObject) (openapi.RefreshEmployeesResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.RefreshEmployeesdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	fetch, err := app.Refresh(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.RefreshEmployeesdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.RefreshEmployees200JSONResponse(toFetchStatus(fetch)), nil
}

// GetEmployee implements openapi.StrictServerInterface.
func (s *openAPIServer) GetEmployee(ctx context.Context, request openapi.GetEmployeeRequestObject) (openapi.GetEmployeeResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetEmployeedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	view, err := app.Employee(ctx, request.Id)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetEmployeedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.GetEmployee200JSONResponse(toDetailView(view)), nil
}

// ExportEmployees implements openapi.StrictServerInterface. An empty
// collection answers 204 without a body.
func (s *openAPIServer) ExportEmployees(ctx context.Context, _ openapi.ExportEmployeesRequestObject) (openapi.ExportEmployeesResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.ExportEmployeesdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	var buf bytes.Buffer
	n, err := app.Export(ctx, &buf)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.ExportEmployeesdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}
	if n == 0 {
		return openapi.ExportEmployees204Response{}, nil
	}

	return openapi.ExportEmployees200TextcsvCharsetUtf8Response{
		Body: &buf,
		Headers: openapi.ExportEmployees200ResponseHeaders{
			ContentDisposition: fmt.Sprintf("attachment; filename=%q", views.CSVFileName),
		},
		ContentLength: int64(buf.Len()),
	}, nil
}

// Login implements openapi.StrictServerInterface.
func (s *openAPIServer) Login(ctx context.Context, request openapi.LoginRequestObject) (openapi.LoginResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.LogindefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	if request.Body == nil {
		body, status := newBadRequest("missing request body")
		return openapi.LogindefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	from := ""
	if request.Body.From != nil {
		from = *request.Body.From
	}

	intent, ok := app.Login(ctx, request.Body.Username, request.Body.Password, from)
	if !ok {
		body, status := s.failure(ctx, errInvalidCredentials)
		return openapi.LogindefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.Login200JSONResponse{Authenticated: true, Redirect: toIntent(intent)}, nil
}

// Logout implements openapi.StrictServerInterface.
func (s *openAPIServer) Logout(ctx context.Context, _ openapi.LogoutRequestObject) (openapi.LogoutResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.LogoutdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	app.Logout(ctx)

	return openapi.Logout200JSONResponse{
		Authenticated: false,
		Redirect:      toIntent(session.Intent{Path: session.LoginPath, Replace: true}),
	}, nil
}

// GetMap implements openapi.StrictServerInterface.
func (s *openAPIServer) GetMap(ctx context.Context, _ openapi.GetMapRequestObject) (openapi.GetMapResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetMapdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	view, err := app.Map(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetMapdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	points := make([]openapi.CityPoint, 0, len(view.Points))
	for _, p := range view.Points {
		points = append(points, openapi.CityPoint{City: p.City, Count: p.Count, Lat: p.Lat, Lng: p.Lng})
	}

	status := toFetchStatus(view.Status)
	return openapi.GetMap200JSONResponse{
		Error:     status.Error,
		Points:    points,
		State:     status.State,
		UpdatedAt: status.UpdatedAt,
	}, nil
}

// GetNotifications implements openapi.StrictServerInterface.
func (s *openAPIServer) GetNotifications(ctx context.Context, _ openapi.GetNotificationsRequestObject) (openapi.GetNotificationsResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetNotificationsdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	drained := app.Notifications.Drain()
	notes := make(openapi.GetNotifications200JSONResponse, 0, len(drained))
	for _, note := range drained {
		notes = append(notes, openapi.Notification{Level: string(note.Level), Message: note.Message})
	}

	return notes, nil
}

// GetTheme implements openapi.StrictServerInterface.
func (s *openAPIServer) GetTheme(ctx context.Context, _ openapi.GetThemeRequestObject) (openapi.GetThemeResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetThemedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.GetTheme200JSONResponse{Theme: string(app.Preferences.Theme())}, nil
}

// SetTheme implements openapi.StrictServerInterface.
func (s *openAPIServer) SetTheme(ctx context.Context, request openapi.SetThemeRequestObject) (openapi.SetThemeResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.SetThemedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	if request.Body == nil {
		body, status := newBadRequest("missing request body")
		return openapi.SetThemedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	if err := app.Preferences.SetTheme(ctx, preferences.Theme(request.Body.Theme)); err != nil {
		body, status := s.failure(ctx, err)
		return openapi.SetThemedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.SetTheme200JSONResponse{Theme: string(app.Preferences.Theme())}, nil
}

// ToggleTheme implements openapi.StrictServerInterface.
func (s *openAPIServer) ToggleTheme(ctx context.Context, _ openapi.ToggleThemeRequestObject) (openapi.ToggleThemeResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.ToggleThemedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.ToggleTheme200JSONResponse{Theme: string(app.Preferences.ToggleTheme(ctx))}, nil
}

// GetSearch implements openapi.StrictServerInterface.
func (s *openAPIServer) GetSearch(ctx context.Context, _ openapi.GetSearchRequestObject) (openapi.GetSearchResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetSearchdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	state, err := app.SearchState(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetSearchdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.GetSearch200JSONResponse{Applied: state.Applied, Input: state.Input}, nil
}

// SetSearch implements openapi.StrictServerInterface.
func (s *openAPIServer) SetSearch(ctx context.Context, request openapi.SetSearchRequestObject) (openapi.SetSearchResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.SetSearchdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	if request.Body == nil {
		body, status := newBadRequest("missing request body")
		return openapi.SetSearchdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	state, err := app.SearchInput(ctx, request.Body.Query)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.SetSearchdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.SetSearch200JSONResponse{Applied: state.Applied, Input: state.Input}, nil
}

// GetSession implements openapi.StrictServerInterface.
func (s *openAPIServer) GetSession(ctx context.Context, _ openapi.GetSessionRequestObject) (openapi.GetSessionResponseObject, error) {
	app, err := appFromContext(ctx)
	if err != nil {
		body, status := s.failure(ctx, err)
		return openapi.GetSessiondefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return openapi.GetSession200JSONResponse{Authenticated: app.Session.IsAuthenticated()}, nil
}

// failure logs err by severity and renders it as an error model.
func (s *openAPIServer) failure(ctx context.Context, err error) (model openapi.ErrorModel, httpStatus int) {
	model, httpStatus = toErrorModel(err)
	if httpStatus >= http.StatusInternalServerError {
		slogctx.Error(ctx, "Request failed", "error", err)
	} else {
		slogctx.Debug(ctx, "Request rejected", "error", err)
	}

	return model, httpStatus
}

func toErrorModel(err error) (model openapi.ErrorModel, httpStatus int) {
	var serviceErr *serviceerr.Error
	if !errors.As(err, &serviceErr) {
		serviceErr = serviceerr.ErrUnknown
	}

	return openapi.ErrorModel{
		Error:            string(serviceErr.Err),
		ErrorDescription: optional(serviceErr.Description),
	}, serviceErr.HTTPStatus()
}

func newBadRequest(description string) (model openapi.ErrorModel, httpStatus int) {
	return openapi.ErrorModel{
		Error:            string(serviceerr.CodeInvalidRequest),
		ErrorDescription: &description,
	}, http.StatusBadRequest
}

func toFetchStatus(status dashboard.Status) openapi.FetchStatus {
	var updatedAt *time.Time
	if !status.UpdatedAt.IsZero() {
		updatedAt = &status.UpdatedAt
	}

	return openapi.FetchStatus{
		Error:     optional(status.ErrorMessage),
		State:     status.State,
		UpdatedAt: updatedAt,
	}
}

func toDetailView(view dashboard.DetailView) openapi.DetailView {
	status := toFetchStatus(view.Status)

	return openapi.DetailView{
		Employee:  toEmployee(view.Employee),
		Error:     status.Error,
		State:     status.State,
		UpdatedAt: status.UpdatedAt,
	}
}

func toEmployee(record employee.Record) openapi.Employee {
	return openapi.Employee{
		Age:    record.Age,
		City:   record.City,
		Id:     record.ID,
		Name:   record.Name,
		Salary: record.Salary,
	}
}

func toEmployees(records employee.Collection) []openapi.Employee {
	out := make([]openapi.Employee, 0, len(records))
	for _, record := range records {
		out = append(out, toEmployee(record))
	}

	return out
}

func toIntent(intent session.Intent) *openapi.Intent {
	return &openapi.Intent{
		From:    optional(intent.From),
		Path:    intent.Path,
		Replace: intent.Replace,
	}
}

// optional maps the zero value to an absent field.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}

	return &v
}
