package itemstore_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"salesbi-api/internal/infrastructure/itemstore"
)

// decodeRecord simula el decode real del cliente (UseNumber activo).
func decodeRecord(t *testing.T, raw string) itemstore.Record {
	t.Helper()
	var r itemstore.Record
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&r))
	return r
}

// ── RefID: foreign keys escalar-u-objeto ─────────────────────────────────────

func TestRefID_EscalarYObjetoResuelvenIgual(t *testing.T) {
	r := decodeRecord(t, `{"a": 7, "b": "7", "c": {"id": 7}, "d": {"id": "7"}}`)

	assert.Equal(t, "7", r.Ref("a"))
	assert.Equal(t, "7", r.Ref("b"))
	assert.Equal(t, "7", r.Ref("c"), "una referencia anidada {id} debe desenvolverse")
	assert.Equal(t, "7", r.Ref("d"))
}

func TestRefID_NuloCeroYAusente_DevuelvenVacio(t *testing.T) {
	r := decodeRecord(t, `{"a": null, "b": 0, "c": "0", "d": {"id": null}}`)

	assert.Empty(t, r.Ref("a"))
	assert.Empty(t, r.Ref("b"), "parent_id = 0 significa 'sin maestro'")
	assert.Empty(t, r.Ref("c"))
	assert.Empty(t, r.Ref("d"))
	assert.Empty(t, r.Ref("no_existe"))
}

// ── IsTrue: el flag de cancelación viene en cuatro codificaciones ─────────────

func TestIsTrue_TodasLasCodificacionesVerdaderas(t *testing.T) {
	r := decodeRecord(t, `{
		"a": true,
		"b": 1,
		"c": "1",
		"d": {"type": "Buffer", "data": [1]}
	}`)

	for _, key := range []string{"a", "b", "c", "d"} {
		assert.True(t, r.True(key), "la llave %q debe ser verdadera", key)
	}
}

func TestIsTrue_CodificacionesFalsas(t *testing.T) {
	r := decodeRecord(t, `{
		"a": false,
		"b": 0,
		"c": "0",
		"d": {"type": "Buffer", "data": [0]},
		"e": {"type": "Buffer", "data": []},
		"f": null,
		"g": "yes"
	}`)

	for _, key := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		assert.False(t, r.True(key), "la llave %q debe ser falsa", key)
	}
}

// ── Dec: números ilegibles valen 0, nunca panic ──────────────────────────────

func TestDec_CoercionTolerante(t *testing.T) {
	r := decodeRecord(t, `{"a": 1000.55, "b": "950.10", "c": "no-numero", "d": null}`)

	assert.Equal(t, "1000.55", r.Dec("a").String())
	assert.Equal(t, "950.1", r.Dec("b").String())
	assert.True(t, r.Dec("c").IsZero(), "un monto ilegible vale 0")
	assert.True(t, r.Dec("d").IsZero())
	assert.True(t, r.Dec("ausente").IsZero())
}

// ── Date: formatos aceptados ─────────────────────────────────────────────────

func TestDate_FormatosAceptados(t *testing.T) {
	r := decodeRecord(t, `{
		"iso": "2024-01-15",
		"rfc": "2024-01-15T10:30:00Z",
		"us":  "01/15/2024",
		"mala": "ayer"
	}`)

	assert.Equal(t, "2024-01-15", r.Date("iso").Format("2006-01-02"))
	assert.Equal(t, "2024-01-15", r.Date("rfc").Format("2006-01-02"))
	assert.Equal(t, "2024-01-15", r.Date("us").Format("2006-01-02"))
	assert.True(t, r.Date("mala").IsZero(), "una fecha ilegible devuelve el cero de time.Time")
}
