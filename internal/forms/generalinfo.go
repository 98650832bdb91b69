package forms

import (
	"fmt"
	"strconv"
	"strings"
)

// GeneralInformation is the normalized cross-form summary embedded in every
// archived report, independent of the raw field layout of the source
// checklist. The field vocabulary is the domain's own snake_case naming and
// travels as-is on the wire.
type GeneralInformation struct {
	Empresa                   string `json:"empresa"`
	NomePropriedade           string `json:"nome_propriedade"`
	IDPropriedade             string `json:"id_propriedade"`
	Endereco                  string `json:"endereco"`
	TipoEdificacao            string `json:"tipo_edificacao"`
	AreaTotalPisoFt2          string `json:"area_total_piso_ft2"`
	DataInspecao              string `json:"data_inspecao"`
	TipoInspecao              string `json:"tipo_inspecao"`
	ProximaInspecaoProgramada string `json:"proxima_inspecao_programada"`
	NomeInspetor              string `json:"nome_inspetor"`
	LicencaInspetor           string `json:"licenca_inspetor"`
	ObservacoesAdicionais     string `json:"observacoes_adicionais"`
	TemperaturaF              string `json:"temperatura_f"`
	CondicoesClimaticas       string `json:"condicoes_climaticas"`
	VelocidadeVentoMph        string `json:"velocidade_vento_mph"`
}

// Fallback-chain field resolution: every summary attribute has an ordered
// list of source field candidates and the first non-empty one wins. The
// candidate orders are load-bearing legacy behavior and must not be
// simplified or reordered; generalinfo_test.go enumerates every chain.
var (
	chainEmpresa         = []string{"company_name", "empresa", "company"}
	chainNomePropriedade = []string{"property_name", "facility_name", "nome_propriedade"}
	chainIDPropriedade   = []string{"property_id", "id_propriedade"}
	chainEndereco        = []string{"property_address", "address", "endereco"}
	chainTipoEdificacao  = []string{"building_type", "tipo_edificacao"}
	chainAreaTotalPiso   = []string{"total_floor_area", "floor_area_ft2"}
	chainDataInspecao    = []string{"inspection_date", "data_inspecao", "date"}
	chainTipoInspecao    = []string{"inspection_type", "tipo_inspecao"}
	chainProximaInspecao = []string{"next_inspection_date", "next_inspection"}
	chainNomeInspetor    = []string{"inspector_name", "inspector"}
	chainLicencaInspetor = []string{"inspector_license", "license_number"}
	chainObservacoes     = []string{"additional_notes", "notes", "observations"}
	chainTemperatura     = []string{"temperature_f", "temperature"}
	chainCondClimaticas  = []string{"weather_conditions", "weather"}
	chainVelocVento      = []string{"wind_speed_mph", "wind_speed"}
)

// BuildGeneralInformation assembles the summary from the raw form values,
// with the session's property reference and resolved company name as final
// fallbacks where the legacy chains come up empty. The inspection date is
// always canonicalized.
func BuildGeneralInformation(state *FormState, companyName string) GeneralInformation {
	v := state.Values

	empresa := chainValue(v, chainEmpresa)
	if empresa == "" {
		empresa = companyName
	}
	nome := chainValue(v, chainNomePropriedade)
	if nome == "" {
		nome = state.Property.Name
	}
	endereco := chainValue(v, chainEndereco)
	if endereco == "" {
		endereco = state.Property.Address
	}
	tipo := chainValue(v, chainTipoInspecao)
	if tipo == "" {
		tipo = string(state.SelectedFrequency)
	}

	return GeneralInformation{
		Empresa:                   empresa,
		NomePropriedade:           nome,
		IDPropriedade:             chainValue(v, chainIDPropriedade),
		Endereco:                  endereco,
		TipoEdificacao:            chainValue(v, chainTipoEdificacao),
		AreaTotalPisoFt2:          chainValue(v, chainAreaTotalPiso),
		DataInspecao:              NormalizeInspectionDate(firstPresent(v, chainDataInspecao)),
		TipoInspecao:              tipo,
		ProximaInspecaoProgramada: chainValue(v, chainProximaInspecao),
		NomeInspetor:              chainValue(v, chainNomeInspetor),
		LicencaInspetor:           chainValue(v, chainLicencaInspetor),
		ObservacoesAdicionais:     chainValue(v, chainObservacoes),
		TemperaturaF:              chainValue(v, chainTemperatura),
		CondicoesClimaticas:       chainValue(v, chainCondClimaticas),
		VelocidadeVentoMph:        chainValue(v, chainVelocVento),
	}
}

// chainValue evaluates the candidate keys in order and returns the first
// non-empty value, stringified.
func chainValue(values map[string]interface{}, candidates []string) string {
	for _, key := range candidates {
		if s := stringify(values[key]); s != "" {
			return s
		}
	}
	return ""
}

// firstPresent returns the first non-empty raw value in the chain, keeping
// its original type for downstream normalization.
func firstPresent(values map[string]interface{}, candidates []string) interface{} {
	for _, key := range candidates {
		v := values[key]
		if stringify(v) != "" {
			return v
		}
	}
	return nil
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
