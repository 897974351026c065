package alerts

import (
	"time"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/domain/entity"
)

// ReportGenerator puerto de generación del informe de reposición en PDF.
type ReportGenerator interface {
	LowStockReport(company *entity.Company, alerts []dto.LowStockAlert, generatedAt time.Time) ([]byte, error)
}
