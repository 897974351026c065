package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/almacen-api/internal/domain"
)

// ReportUseCase exporta la lista de alertas de una empresa como documento
// PDF. Reutiliza el motor de alertas; el render queda detrás del puerto
// ReportGenerator.
type ReportUseCase struct {
	engine    *UseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso del informe.
func NewReportUseCase(engine *UseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{engine: engine, generator: generator}
}

// GenerateLowStockReport calcula las alertas vigentes y las entrega
// renderizadas en PDF. Misma semántica de fallos que el motor: empresa
// inexistente es el único no-encontrado.
func (uc *ReportUseCase) GenerateLowStockReport(ctx context.Context, companyID int64) ([]byte, error) {
	company, err := uc.engine.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("consultar empresa %d: %w", companyID, err)
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %d", domain.ErrNotFound, companyID)
	}

	result, err := uc.engine.ComputeLowStock(ctx, companyID)
	if err != nil {
		return nil, err
	}

	pdf, err := uc.generator.LowStockReport(company, result.Alerts, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("generar PDF de reposición: %w", err)
	}
	return pdf, nil
}
