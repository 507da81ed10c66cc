package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return FromContext(c)
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Limit: DefaultLimit, Offset: 0}},
		{"explicit", "limit=5&offset=10", Params{Limit: 5, Offset: 10}},
		{"clamped to max", "limit=500", Params{Limit: MaxLimit, Offset: 0}},
		{"negative offset", "offset=-3", Params{Limit: DefaultLimit, Offset: 0}},
		{"zero limit", "limit=0", Params{Limit: DefaultLimit, Offset: 0}},
		{"garbage", "limit=abc&offset=xyz", Params{Limit: DefaultLimit, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paramsFor(t, tt.query); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]int{1, 2, 3}, 10, 3, 0)
	if !resp.Success {
		t.Error("response should be marked successful")
	}
	if !resp.HasMore {
		t.Error("3 of 10 should have more")
	}

	last := NewResponse([]int{1}, 10, 3, 9)
	if last.HasMore {
		t.Error("last page should not have more")
	}
}
