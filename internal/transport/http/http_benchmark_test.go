//go:build !integration

package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	cachemem "github.com/Gunvolt24/dance_center/internal/cache/memory"
	"github.com/Gunvolt24/dance_center/internal/domain"
	repomem "github.com/Gunvolt24/dance_center/internal/repo/memory"
	"github.com/Gunvolt24/dance_center/internal/usecase"
	"github.com/Gunvolt24/dance_center/pkg/validate"
)

// --- Бенчмарки ---

// Чтение зала: LEAN (только маршрут) vs FULL (middleware из NewRouter); оба попадают в кэш
func BenchmarkHTTP_GetHall(b *testing.B) {
	h, ids := benchHandler(b, 1)
	path := "/api/hall/" + strconv.FormatInt(ids[0], 10)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, makeLeanRouter(h), path)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, makeFullRouter(h), path)
	})
}

// Список залов: 10/50/100 — рост аллокаций на сериализации
func BenchmarkHTTP_ListHalls(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			h, _ := benchHandler(b, n)
			benchServeGET(b, makeLeanRouter(h), "/api/hall")
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	h, _ := benchHandler(b, 1)
	r := makeFullRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- функции-помощники ---

// benchHandler — сервис залов поверх хранилища в памяти с n залами.
func benchHandler(b *testing.B, n int) (*Handler, []int64) {
	b.Helper()
	repos := repomem.NewStore().Repositories()
	halls := usecase.NewHallService(repos.Halls, cachemem.NewRegistry(cachemem.DefaultCapacity), nopLogger{}, validate.NewEntityValidator())

	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		hall, err := halls.Create(context.Background(), &domain.Hall{Name: "Hall-" + strconv.Itoa(i), Area: 100 + i})
		if err != nil {
			b.Fatalf("seed hall: %v", err)
		}
		ids = append(ids, hall.ID)
	}
	return NewHandler(Services{Halls: halls}, nopLogger{}, 2*time.Second), ids
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	crud[domain.Hall]{h: h, entity: domain.EntityHall, svc: h.svc.Halls,
		setID: func(e *domain.Hall, id int64) { e.ID = id }}.register(r.Group("/api/hall"))
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
