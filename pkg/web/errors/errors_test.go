package errors_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	httptestutil "github.com/opst/extlite/internal/testutils/http"
	kdb "github.com/opst/extlite/pkg/db"
	"github.com/opst/extlite/pkg/mvc"
	weberr "github.com/opst/extlite/pkg/web/errors"
)

func TestFromDB(t *testing.T) {
	for name, testcase := range map[string]struct {
		when error
		then int
	}{
		"when err is ErrMissing, it should be 404": {
			when: kdb.Missing{Table: "notes", Key: "3"}, then: http.StatusNotFound,
		},
		"when err is ErrConflict, it should be 409": {
			when: kdb.Conflict{Constraint: "notes_pkey", Cause: errors.New("fake")},
			then: http.StatusConflict,
		},
		"when err is unknown, it should be 500": {
			when: errors.New("fake"), then: http.StatusInternalServerError,
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := weberr.FromDB(testcase.when)
			herr := new(echo.HTTPError)
			if !errors.As(err, &herr) {
				t.Fatalf("not HTTPError: %v", err)
			}
			if herr.Code != testcase.then {
				t.Errorf("code: got %d, want %d", herr.Code, testcase.then)
			}
			if !errors.Is(err, testcase.when) {
				t.Errorf("cause is lost: %v", err)
			}
		})
	}

	t.Run("when err is nil, it should be nil", func(t *testing.T) {
		if err := weberr.FromDB(nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("when an ErrorMessage is returned, it responds reason and advice", func(t *testing.T) {
		e := echo.New()
		c, resp := httptestutil.Get(e, "/notes/save")

		weberr.ErrorHandler(e)(weberr.BadRequest("title is required", errors.New("fake")), c)

		if resp.Code != http.StatusBadRequest {
			t.Errorf("status: %d", resp.Code)
		}
		if got := resp.Body.String(); got != "bad request\ntitle is required" {
			t.Errorf("body: %q", got)
		}
	})

	t.Run("when an unknown error is returned, it responds 500 without the cause", func(t *testing.T) {
		e := echo.New()
		c, resp := httptestutil.Get(e, "/notes/index")

		weberr.ErrorHandler(e)(errors.New("secret detail"), c)

		if resp.Code != http.StatusInternalServerError {
			t.Errorf("status: %d", resp.Code)
		}
		if strings.Contains(resp.Body.String(), "secret") {
			t.Errorf("body: %q", resp.Body.String())
		}
	})

	t.Run("when echo's own HTTPError is returned, it responds its message", func(t *testing.T) {
		e := echo.New()
		c, resp := httptestutil.Get(e, "/nowhere")

		weberr.ErrorHandler(e)(echo.ErrNotFound, c)

		if resp.Code != http.StatusNotFound {
			t.Errorf("status: %d", resp.Code)
		}
		if got := resp.Body.String(); got != "Not Found" {
			t.Errorf("body: %q", got)
		}
	})
}

func TestErrorHandler_WithDispatch(t *testing.T) {
	t.Run("when an action fails with request data in the message, it responds plain text", func(t *testing.T) {
		e := echo.New()
		e.HTTPErrorHandler = weberr.ErrorHandler(e)
		e.GET("/notes/*", mvc.Dispatch(failing{
			err: echo.NewHTTPError(http.StatusBadRequest, "<script>alert(1)</script>"),
		}))

		resp := httptestutil.Serve(e, httptest.NewRequest(http.MethodGet, "/notes/index", nil))

		if resp.Code != http.StatusBadRequest {
			t.Errorf("status: %d", resp.Code)
		}
		if got := resp.Header().Get(echo.HeaderContentType); got != echo.MIMETextPlainCharsetUTF8 {
			t.Errorf("content type: %s", got)
		}
		if got := resp.Body.String(); got != "<script>alert(1)</script>" {
			t.Errorf("body: %q", got)
		}
	})
}

// failing is a controller whose actions always fail.
type failing struct {
	err error
}

func (failing) Name() string                { return "notes" }
func (f failing) Index(*mvc.Context) error  { return f.err }
func (f failing) Add(*mvc.Context) error    { return f.err }
func (f failing) Create(*mvc.Context) error { return f.err }
func (f failing) Edit(*mvc.Context) error   { return f.err }
func (f failing) Save(*mvc.Context) error   { return f.err }
func (f failing) Delete(*mvc.Context) error { return f.err }
func (f failing) Detail(*mvc.Context) error { return f.err }
