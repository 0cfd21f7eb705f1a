package domain

// Canonical column names of the sábana export. Headers in the source file are
// matched against these after trimming, so the column set is one declared
// contract instead of string literals scattered across the pipeline.
const (
	ColAsesor         = "ASESOR"
	ColPrecio         = "PRECIO"
	ColCodigo         = "CODIGO"
	ColTipo           = "TIPO"
	ColInmobiliaria   = "INMOBILIARIA"
	ColServicio       = "SERVICIO"
	ColProyecto       = "PROYECTO"
	ColDistrito       = "DISTRITO"
	ColLima           = "LIMA QUE PERTENECE"
	ColMesFacturacion = "MES DE FACTURACIÓN"
	ColAnoFacturacion = "AÑO DE FACTURACIÓN"
	ColMesRealizacion = "MES REALIZACIÓN"
	ColAnoRealizacion = "AÑO DE REALIZACIÓN"
)

// TextColumns are cleaned with NormalizeText by the batch cleaner. TIPO is
// deliberately absent: it is validated as mandatory but loaded as-is.
var TextColumns = []string{
	ColAsesor,
	ColInmobiliaria,
	ColServicio,
	ColProyecto,
	ColDistrito,
	ColLima,
	ColCodigo,
}

// YearColumns are coerced to numeric during cleaning; values that cannot be
// parsed become the missing-value sentinel (nil) rather than failing.
var YearColumns = []string{
	ColAnoFacturacion,
	ColAnoRealizacion,
}

// MandatoryColumns must hold a non-empty string for every current-year record
// that reaches the final validation pass.
var MandatoryColumns = []string{
	ColAsesor,
	ColInmobiliaria,
	ColTipo,
	ColServicio,
	ColProyecto,
	ColDistrito,
	ColLima,
}

// RequiredColumns is the minimum header set the source file must provide.
// A file missing any of these is a configuration error, not a data error.
var RequiredColumns = []string{
	ColAsesor,
	ColPrecio,
	ColCodigo,
	ColTipo,
	ColInmobiliaria,
	ColServicio,
	ColProyecto,
	ColDistrito,
	ColLima,
	ColMesFacturacion,
	ColAnoFacturacion,
	ColMesRealizacion,
	ColAnoRealizacion,
}

// CampaignField pairs a marketing-campaign flag column with its date columns.
// All campaign columns are optional in the source file.
type CampaignField struct {
	Value string
	Dates []string
}

var CampaignFields = []CampaignField{
	{Value: "FB_INST", Dates: []string{"FECHA_FB_INST"}},
	{Value: "MAILING", Dates: []string{"FECHA_MAILING"}},
	{Value: "DESTACADO_NORMAL", Dates: []string{"FECHA_INICIO_DESTACADO_NORMAL", "FECHA_FIN_DESTACADO_NORMAL"}},
	{Value: "REMARKETING", Dates: []string{"FECHA_REMARKETING"}},
	{Value: "BANNER_TOP", Dates: []string{"FECHA_INICIO_BANNER_TOP", "FECHA_FIN_BANNER_TOP"}},
	{Value: "TOMA_DE_CANAL", Dates: []string{"FECHA_INICIO_TOMA_DE_CANAL", "FECHA_FIN_TOMA_DE_CANAL"}},
	{Value: "WSP_NEXO_EVENTO", Dates: []string{"FECHA_WSP_NEXO_EVENTO"}},
}

// CancellationMarkers are the textual tokens that force a price to zero.
// Matching is substring containment in declaration order, so the first marker
// that appears anywhere in the upper-cased value decides the reported reason.
// Containment can false-positive on legitimate values that embed a marker;
// this mirrors the upstream export convention and is left as-is.
var CancellationMarkers = []string{
	"ANULADO",
	"BONIFICADO",
	"BONIFICADO ANULADO",
	"BONIFICADO PERDIDO",
	"BONIFICADO  PERDIDO",
}

// MonthNumbers maps upper-cased Spanish month names to their 1-12 ordinal.
// SETIEMBRE is a regionally common alternate spelling of SEPTIEMBRE.
var MonthNumbers = map[string]int{
	"ENERO":      1,
	"FEBRERO":    2,
	"MARZO":      3,
	"ABRIL":      4,
	"MAYO":       5,
	"JUNIO":      6,
	"JULIO":      7,
	"AGOSTO":     8,
	"SEPTIEMBRE": 9,
	"SETIEMBRE":  9,
	"OCTUBRE":    10,
	"NOVIEMBRE":  11,
	"DICIEMBRE":  12,
}
