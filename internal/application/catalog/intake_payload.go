package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invorya/almacen-api/internal/domain"
)

// intakeInput payload del alta de producto ya validado y coercionado.
type intakeInput struct {
	Name            string
	SKU             string
	Price           decimal.Decimal
	WarehouseID     int64
	InitialQuantity int64
	TypeID          *int64
	SupplierID      *int64
}

// Campos requeridos del alta, en el orden en que se reportan los ausentes.
var (
	requiredProductFields   = []string{"name", "sku", "price"}
	requiredInventoryFields = []string{"warehouse_id", "initial_quantity"}
)

// parseIntakePayload valida el cuerpo crudo en etapas ordenadas con
// cortocircuito: JSON bien formado, campos del producto presentes, campos del
// inventario presentes, coerción de tipos y cantidad no negativa. Todo fallo
// envuelve domain.ErrInvalidInput con el detalle para el cliente.
func parseIntakePayload(body []byte) (*intakeInput, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: el cuerpo debe ser un objeto JSON", domain.ErrInvalidInput)
	}

	if missing := missingFields(raw, requiredProductFields); len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan campos del producto: %s",
			domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if missing := missingFields(raw, requiredInventoryFields); len(missing) > 0 {
		return nil, fmt.Errorf("%w: faltan campos del inventario inicial: %s",
			domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	in := &intakeInput{}
	var err error
	if in.Name, err = decodeString(raw, "name"); err != nil {
		return nil, err
	}
	if in.SKU, err = decodeString(raw, "sku"); err != nil {
		return nil, err
	}
	if in.Price, err = decodePrice(raw, "price"); err != nil {
		return nil, err
	}
	if in.WarehouseID, err = decodeInt(raw, "warehouse_id"); err != nil {
		return nil, err
	}
	if in.InitialQuantity, err = decodeInt(raw, "initial_quantity"); err != nil {
		return nil, err
	}
	if in.TypeID, err = decodeOptionalInt(raw, "type_id"); err != nil {
		return nil, err
	}
	if in.SupplierID, err = decodeOptionalInt(raw, "supplier_id"); err != nil {
		return nil, err
	}

	if in.InitialQuantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad inicial no puede ser negativa", domain.ErrInvalidInput)
	}
	return in, nil
}

// missingFields nombres ausentes del payload, en el orden declarado.
func missingFields(raw map[string]json.RawMessage, fields []string) []string {
	var missing []string
	for _, f := range fields {
		if _, ok := raw[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// typeError error de coerción nombrando el campo y el valor ofensivo.
func typeError(field string, raw json.RawMessage) error {
	return fmt.Errorf("%w: tipo de dato inválido para %s: %s",
		domain.ErrInvalidInput, field, string(raw))
}

// decodeString acepta únicamente cadenas JSON.
func decodeString(raw map[string]json.RawMessage, field string) (string, error) {
	var s string
	if err := json.Unmarshal(raw[field], &s); err != nil {
		return "", typeError(field, raw[field])
	}
	return s, nil
}

// decodePrice acepta números JSON y cadenas numéricas. El valor se conserva
// como decimal exacto; nunca pasa por float64.
func decodePrice(raw map[string]json.RawMessage, field string) (decimal.Decimal, error) {
	b := raw[field]
	// decimal trata "null" como no-op sobre el valor cero; aquí null es un
	// tipo inválido, no un cero.
	if string(b) == "null" {
		return decimal.Decimal{}, typeError(field, b)
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return decimal.Decimal{}, typeError(field, b)
	}
	return d, nil
}

// decodeInt acepta enteros JSON y cadenas de dígitos; rechaza fraccionarios,
// booleanos y null.
func decodeInt(raw map[string]json.RawMessage, field string) (int64, error) {
	b := raw[field]
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if perr != nil {
			return 0, typeError(field, b)
		}
		return parsed, nil
	}
	return 0, typeError(field, b)
}

// decodeOptionalInt devuelve nil cuando el campo está ausente o es null.
func decodeOptionalInt(raw map[string]json.RawMessage, field string) (*int64, error) {
	b, ok := raw[field]
	if !ok || string(b) == "null" {
		return nil, nil
	}
	n, err := decodeInt(raw, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
