package inventory

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/invorya/almacen-api/internal/application/dto"
	"github.com/invorya/almacen-api/internal/domain"
	"github.com/invorya/almacen-api/internal/domain/entity"
	"github.com/invorya/almacen-api/internal/domain/repository"
)

// AdjustUseCase fija la cantidad de un inventario y deja constancia en el
// historial de cambios dentro de la misma transacción, de modo que el stock
// y su auditoría nunca divergen. Es el único productor de entradas del
// historial que lee el motor de alertas.
type AdjustUseCase struct {
	txRunner TxRunner
}

// NewAdjustUseCase construye el caso de uso de ajuste.
func NewAdjustUseCase(txRunner TxRunner) *AdjustUseCase {
	return &AdjustUseCase{txRunner: txRunner}
}

// AdjustQuantity fija la cantidad del inventario en newQuantity. La fila se
// bloquea con FOR UPDATE para serializar ajustes concurrentes. Ajustar a la
// cantidad vigente no escribe nada.
func (uc *AdjustUseCase) AdjustQuantity(ctx context.Context, inventoryID, newQuantity int64) (*dto.AdjustmentResponse, error) {
	if newQuantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}

	var oldQuantity int64
	err := uc.txRunner.RunAdjustment(ctx, func(
		inventoryRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error {
		inv, err := inventoryRepo.GetForUpdate(ctx, inventoryID)
		if err != nil {
			return fmt.Errorf("bloquear inventario %d: %w", inventoryID, err)
		}
		if inv == nil {
			return fmt.Errorf("%w: inventario %d", domain.ErrNotFound, inventoryID)
		}

		oldQuantity = inv.Quantity
		if oldQuantity == newQuantity {
			return nil
		}

		now := time.Now().UTC()
		inv.Quantity = newQuantity
		inv.UpdatedAt = now
		if err := inventoryRepo.UpdateQuantity(ctx, inv); err != nil {
			return fmt.Errorf("actualizar cantidad del inventario %d: %w", inventoryID, err)
		}

		change := &entity.InventoryChange{
			InventoryID: inventoryID,
			OldQuantity: oldQuantity,
			NewQuantity: newQuantity,
			ChangedAt:   now,
		}
		if err := changeRepo.Create(ctx, change); err != nil {
			return fmt.Errorf("registrar cambio del inventario %d: %w", inventoryID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.AdjustmentResponse{
		Message:     "cantidad ajustada",
		InventoryID: strconv.FormatInt(inventoryID, 10),
		OldQuantity: oldQuantity,
		NewQuantity: newQuantity,
	}, nil
}
