package supplier

// Config holds configuration for the supplier feed source.
type Config struct {
	// Source selects the retrieval mechanism: "http" or "s3".
	Source string `mapstructure:"source" default:"http"`
	// URL is the feed archive location for the http source.
	URL string `mapstructure:"url" default:"https://timeworld.ru/upload/files/ostatki.zip"`
	// Object is the feed archive object name for the s3 source.
	Object string `mapstructure:"object" default:"ostatki.zip"`
	// Workbook is the xlsx file name inside the archive. If the archive
	// does not contain it, the first .xlsx entry is used instead.
	Workbook string `mapstructure:"workbook" default:"ostatki.xlsx"`
	// HeaderRow is the 1-based workbook row holding the column headers.
	// Rows above it are the supplier's preamble and are ignored.
	HeaderRow int `mapstructure:"header_row" default:"18"`
	// CodeColumn is the header of the product code column.
	CodeColumn string `mapstructure:"code_column" default:"Код"`
	// QuantityColumn is the header of the quantity column.
	QuantityColumn string `mapstructure:"quantity_column" default:"Количество"`
	// PriceColumn is the header of the price column.
	PriceColumn string `mapstructure:"price_column" default:"Цена"`
	// TimeoutSeconds bounds the http download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

const (
	// SourceHTTP downloads the archive from Config.URL.
	SourceHTTP = "http"
	// SourceS3 fetches the archive from the configured storage bucket.
	SourceS3 = "s3"
)
