package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/report"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
	"github.com/tu-usuario/cellar-pro/pkg/logger"
)

// ReportUseCase cierre diario por stream: guarda el reporte, alimenta la serie
// diaria de cada item y expone lecturas (recientes, texto plano, PDF).
type ReportUseCase struct {
	items   repository.ItemRepository
	reports repository.ReportRepository
	pdf     ReportPDFGenerator
	loc     *time.Location
	footer  string
	log     *logger.Logger
	now     func() time.Time
}

// NewReportUseCase construye el caso de uso. loc es la zona horaria del local
// (la identidad del día depende de ella); footer se agrega al parte de texto.
func NewReportUseCase(items repository.ItemRepository, reports repository.ReportRepository, pdf ReportPDFGenerator, loc *time.Location, footer string, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		items:   items,
		reports: reports,
		pdf:     pdf,
		loc:     loc,
		footer:  footer,
		log:     log,
		now:     time.Now,
	}
}

func (uc *ReportUseCase) today() time.Time {
	return uc.now().In(uc.loc)
}

// Save cierra el día del stream: construye el reporte, lo guarda (sobrescribe
// el del mismo día si existe) y agrega el punto del día a la serie de TODOS
// los items, tengan línea o no: los días en cero también cuentan para la
// gráfica. Escrituras en paralelo; la primera falla cancela el resto.
// No hay rollback entre reporte y series: la operación es re-ejecutable y la
// segunda pasada converge al mismo estado.
func (uc *ReportUseCase) Save(ctx context.Context, stream entity.Stream) (*dto.ReportResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	items, err := uc.items.ListByStream(ctx, stream)
	if err != nil {
		return nil, err
	}

	now := uc.today()
	rep := report.Build(stream, items, report.TotalAssets(items), now)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.reports.Upsert(gctx, rep)
	})
	for _, item := range items {
		stat := entity.DailyStat{Date: rep.Date, Stock: item.StockUnits, OrderQty: item.OrderQty}
		g.Go(func() error {
			merged := report.MergeDailyStat(item.DailyStats, stat)
			return uc.items.ReplaceDailyStats(gctx, stream, item.ID, merged)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.log.WithStream(string(stream)).Info().
		Str("date_key", rep.DateKey).
		Int("lines", len(rep.Lines)).
		Str("total_assets", rep.TotalAssets.String()).
		Msg("reporte diario guardado")

	resp := toReportResponse(rep)
	return &resp, nil
}

// ListRecent devuelve los últimos reportes del stream, el más nuevo primero.
func (uc *ReportUseCase) ListRecent(ctx context.Context, stream entity.Stream, limit int) (*dto.ReportListResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	if limit <= 0 {
		limit = 10
	}
	reports, err := uc.reports.ListRecent(ctx, stream, limit)
	if err != nil {
		return nil, err
	}
	out := &dto.ReportListResponse{Reports: make([]dto.ReportResponse, 0, len(reports))}
	for _, rep := range reports {
		out.Reports = append(out.Reports, toReportResponse(rep))
	}
	return out, nil
}

// Text arma el parte de stock en vivo, listo para copiar al chat del equipo.
func (uc *ReportUseCase) Text(ctx context.Context, stream entity.Stream) (*dto.TextReportResponse, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	items, err := uc.items.ListByStream(ctx, stream)
	if err != nil {
		return nil, err
	}
	return &dto.TextReportResponse{
		Text: report.RenderStockText(stream, items, uc.today(), uc.footer),
	}, nil
}

// PDF renderiza el reporte guardado de un día como PDF.
func (uc *ReportUseCase) PDF(ctx context.Context, stream entity.Stream, dateKey string) ([]byte, error) {
	if !stream.Valid() {
		return nil, domain.ErrUnknownStream
	}
	rep, err := uc.reports.GetByDateKey(ctx, stream, dateKey)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(rep)
}

func toReportResponse(rep *entity.DailyReport) dto.ReportResponse {
	return dto.ReportResponse{
		Stream:      string(rep.Stream),
		DateKey:     rep.DateKey,
		Date:        rep.Date,
		TotalAssets: rep.TotalAssets,
		Lines:       rep.Lines,
		CreatedAt:   rep.CreatedAt,
	}
}
