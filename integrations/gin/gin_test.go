package gin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errpipeline "github.com/blackwell-systems/err-pipeline"
	"github.com/gin-gonic/gin"
)

func TestErrorsMiddlewareFunnels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := errpipeline.NewPipeline(errpipeline.PipelineConfig{})

	r := gin.New()
	r.Use(Errors(p))
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("lookup failed"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	p.Close()

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var ce errpipeline.Error
	if err := json.Unmarshal(rec.Body.Bytes(), &ce); err != nil {
		t.Fatalf("response is not a canonical error: %v", err)
	}
	if ce.Kind != errpipeline.KindUnknown {
		t.Errorf("Kind = %s, want %s", ce.Kind, errpipeline.KindUnknown)
	}

	if got := len(p.Notifier().Log().Recent()); got != 1 {
		t.Errorf("pipeline should have recorded the failure, got %d", got)
	}
}

func TestErrorsMiddlewareNoErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := errpipeline.NewPipeline(errpipeline.PipelineConfig{})
	defer p.Close()

	r := gin.New()
	r.Use(Errors(p))
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := len(p.Notifier().Log().Recent()); got != 0 {
		t.Errorf("nothing should be recorded for a clean request, got %d", got)
	}
}

func TestErrorsMiddlewareCanonicalPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := errpipeline.NewPipeline(errpipeline.PipelineConfig{})

	r := gin.New()
	r.Use(Errors(p))
	r.GET("/conflict", func(c *gin.Context) {
		_ = c.Error(errpipeline.New(errpipeline.KindConflict, "").WithStatus(409))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conflict", nil))
	p.Close()

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}
