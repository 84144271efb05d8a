package itemstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record fila cruda del item store. Los valores llegan con tipado dinámico:
// números como json.Number, foreign keys como escalar o como objeto {id},
// booleanos como bool/entero/string/buffer. Los helpers de este archivo
// centralizan la coerción para que los adaptadores nunca fallen por forma.
type Record map[string]any

// Str devuelve el valor como string ("" si falta o no es representable).
func (r Record) Str(key string) string {
	return asString(r[key])
}

// Dec devuelve el valor como decimal; cualquier campo ilegible vale 0.
func (r Record) Dec(key string) decimal.Decimal {
	switch v := r[key].(type) {
	case json.Number:
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Zero
}

// Int64 devuelve el valor como entero (0 si es ilegible).
func (r Record) Int64(key string) int64 {
	return r.Dec(key).IntPart()
}

// Ref devuelve el id normalizado de una foreign key, desenvolviendo la
// ambigüedad escalar-u-objeto del store: 7, "7" y {"id":7} resuelven "7".
// Devuelve "" si la referencia falta o es nula.
func (r Record) Ref(key string) string {
	return RefID(r[key])
}

// Date interpreta el valor como fecha. Acepta YYYY-MM-DD, RFC3339 y
// MM/DD/YYYY; devuelve el cero de time.Time si no parsea.
func (r Record) Date(key string) time.Time {
	s := asString(r[key])
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "01/02/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// True aplica IsTrue sobre el campo.
func (r Record) True(key string) bool {
	return IsTrue(r[key])
}

// RefID normaliza una referencia que puede venir como escalar o como objeto
// anidado {id: ...}. Cero, nulo o vacío devuelven "".
func RefID(v any) string {
	switch ref := v.(type) {
	case map[string]any:
		return RefID(ref["id"])
	case nil:
		return ""
	}
	s := asString(v)
	if s == "0" {
		return ""
	}
	return s
}

// IsTrue predicado de veracidad para los flags del store, que codifica
// booleanos de cuatro maneras distintas según la versión del backend:
// true, 1, "1" o un objeto tipo buffer binario {"type":"Buffer","data":[1]}.
func IsTrue(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case json.Number:
		return b.String() == "1"
	case float64:
		return b == 1
	case int:
		return b == 1
	case string:
		return b == "1" || strings.EqualFold(b, "true")
	case map[string]any:
		// Forma {"type":"Buffer","data":[1]}: decide el primer byte
		data, ok := b["data"].([]any)
		if !ok || len(data) == 0 {
			return false
		}
		return IsTrue(data[0])
	}
	return false
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case json.Number:
		return s.String()
	case int:
		return fmt.Sprintf("%d", s)
	case int64:
		return fmt.Sprintf("%d", s)
	case float64:
		// Solo aparece si el decode no usó UseNumber; formatea sin notación científica
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.6f", s), "0"), ".")
	case nil:
		return ""
	}
	return ""
}
