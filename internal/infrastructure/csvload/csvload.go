// Package csvload decodifica los CSV subidos por la capa de carga a tablas del
// dominio. Los exports de Excel llegan con BOM UTF-8 o directamente en
// Windows-1252; aquí se normaliza todo a UTF-8 antes de parsear.
package csvload

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/dataset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode lee un CSV completo y devuelve la tabla. La primera fila es el
// encabezado; filas con distinto número de campos se toleran (la tabla las
// ajusta al ancho del encabezado).
func Decode(r io.Reader) (*dataset.Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}

	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		// Export de Excel sin UTF-8: asumimos Windows-1252
		raw, err = transcodeWindows1252(raw)
		if err != nil {
			return nil, fmt.Errorf("transcodificar CSV: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV sin encabezado: %w", domain.ErrEmptyTable)
	}

	return dataset.New(records[0], records[1:]), nil
}

func transcodeWindows1252(raw []byte) ([]byte, error) {
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}
