package schema

// Static NFPA 25 checklist definitions. These are the declarative sources the
// registry is built from at startup; nothing mutates them at runtime.

// FormSprinkler is the wet/dry sprinkler system ITM checklist.
const FormSprinkler = "sprinkler-systems"

// FormStandpipe is the standpipe and hose system ITM checklist.
const FormStandpipe = "standpipe-hose"

// FormFirePump is the fire pump assembly ITM checklist.
const FormFirePump = "fire-pump"

// FormWaterTank is the water storage tank ITM checklist.
const FormWaterTank = "water-tank"

var passFailNA = []string{"Sim", "Não", "N/A"}

// DefaultRegistry builds the registry of all shipped NFPA 25 checklists.
func DefaultRegistry() *Registry {
	return MustNewRegistry(
		SprinklerSchema(),
		StandpipeSchema(),
		FirePumpSchema(),
		WaterTankSchema(),
	)
}

// SprinklerSchema describes the sprinkler systems checklist (NFPA 25 ch. 5).
func SprinklerSchema() *FormSchema {
	return &FormSchema{
		ID:      FormSprinkler,
		Title:   "Sistemas de Sprinklers (NFPA 25)",
		Version: "2023.1",
		Sections: []FormSection{
			generalInfoSection(),
			{
				ID:    "gauges-weekly",
				Title: "Manômetros (Semanal)",
				Fields: []FormField{
					{ID: "gauges_condition", Label: "Manômetros em boas condições", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "gauges_pressure_normal", Label: "Pressão de ar/água normal", Type: FieldRadioTristate, Required: true, Options: passFailNA,
						Include: &IncludeField{ID: "gauges_pressure_psi", Label: "Pressão (psi)", Type: FieldNumericInput}},
				},
				RequiredFrequencies: []Frequency{FrequencyWeekly},
				ConditionalDisplay:  true,
			},
			{
				ID:    "control-valves-monthly",
				Title: "Válvulas de Controle (Mensal)",
				Fields: []FormField{
					{ID: "valves_header", Label: "Válvulas de controle", Type: FieldSectionHeader},
					{ID: "valves_open", Label: "Válvulas na posição aberta", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "valves_sealed", Label: "Válvulas travadas ou supervisionadas", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "valves_accessible", Label: "Válvulas acessíveis", Type: FieldRadioTristate, Options: passFailNA},
					{ID: "valves_notes", Label: "Observações", Type: FieldMultiLineText},
				},
				RequiredFrequencies: []Frequency{FrequencyMonthly, FrequencyQuarterly},
				ConditionalDisplay:  true,
			},
			{
				ID:    "alarm-devices-quarterly",
				Title: "Dispositivos de Alarme (Trimestral)",
				Fields: []FormField{
					{ID: "alarm_waterflow_test", Label: "Teste de alarme de fluxo de água", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "alarm_supervisory_test", Label: "Teste de dispositivos supervisórios", Type: FieldRadioTristate, Options: passFailNA},
					{ID: "alarm_test_date", Label: "Data do último teste", Type: FieldDateInput},
				},
				RequiredFrequencies: []Frequency{FrequencyQuarterly},
				ConditionalDisplay:  true,
			},
			{
				ID:    "sprinklers-annual",
				Title: "Sprinklers e Tubulação (Anual)",
				Fields: []FormField{
					{ID: "heads_header", Label: "Bicos de sprinkler", Type: FieldSubsectionHeader},
					{ID: "heads_condition", Label: "Bicos livres de corrosão, pintura e danos", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "heads_clearance", Label: "Distância mínima de armazenamento (18 in) mantida", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "pipe_condition", Label: "Tubulação e suportes em boas condições", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "spare_heads", Label: "Estoque de bicos sobressalentes e chave", Type: FieldRadioTristate, Options: passFailNA},
					{ID: "obstruction_notes", Label: "Obstruções observadas", Type: FieldMultiLineText},
				},
				RequiredFrequencies: []Frequency{FrequencyAnnually, FrequencyFiveYears},
				ConditionalDisplay:  true,
			},
			signatureSection(),
		},
	}
}

// StandpipeSchema describes the standpipe and hose checklist (NFPA 25 ch. 6).
func StandpipeSchema() *FormSchema {
	return &FormSchema{
		ID:      FormStandpipe,
		Title:   "Sistemas de Hidrantes e Mangotinhos (NFPA 25)",
		Version: "2023.1",
		Sections: []FormSection{
			generalInfoSection(),
			{
				ID:    "hose-connections",
				Title: "Conexões de Mangueira",
				Fields: []FormField{
					{ID: "hose_caps_in_place", Label: "Tampões instalados e sem danos", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "hose_threads_ok", Label: "Roscas sem danos", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "hose_valves_leak", Label: "Válvulas sem vazamento", Type: FieldRadioTristate, Required: true, Options: passFailNA},
				},
			},
			{
				ID:    "piping-annual",
				Title: "Tubulação (Anual)",
				Fields: []FormField{
					{ID: "sp_pipe_damage", Label: "Tubulação sem danos mecânicos", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "sp_supports_ok", Label: "Suportes intactos", Type: FieldRadioTristate, Options: passFailNA},
					{ID: "sp_flow_test_date", Label: "Data do último teste de vazão (5 anos)", Type: FieldDateInput},
				},
				RequiredFrequencies: []Frequency{FrequencyAnnually, FrequencyFiveYears},
				ConditionalDisplay:  true,
			},
			signatureSection(),
		},
	}
}

// FirePumpSchema describes the fire pump assembly checklist (NFPA 25 ch. 8).
func FirePumpSchema() *FormSchema {
	return &FormSchema{
		ID:      FormFirePump,
		Title:   "Bombas de Incêndio (NFPA 25)",
		Version: "2023.1",
		Sections: []FormSection{
			generalInfoSection(),
			{
				ID:    "pump-house-weekly",
				Title: "Casa de Bombas (Semanal)",
				Fields: []FormField{
					{ID: "pump_house_temp", Label: "Temperatura adequada na casa de bombas", Type: FieldRadioTristate, Required: true, Options: passFailNA,
						Include: &IncludeField{ID: "pump_house_temp_f", Label: "Temperatura (°F)", Type: FieldNumericInput}},
					{ID: "pump_suction_valve", Label: "Válvula de sucção totalmente aberta", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "pump_discharge_valve", Label: "Válvula de descarga totalmente aberta", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "pump_leaks", Label: "Sem vazamentos visíveis", Type: FieldRadioTristate, Options: passFailNA},
				},
				RequiredFrequencies: []Frequency{FrequencyWeekly, FrequencyMonthly},
				ConditionalDisplay:  true,
			},
			{
				ID:    "pump-run-test",
				Title: "Teste de Funcionamento",
				Fields: []FormField{
					{ID: "pump_churn_test", Label: "Teste sem vazão (churn) executado", Type: FieldRadioTristate, Required: true, Options: passFailNA,
						Include: &IncludeField{ID: "pump_churn_psi", Label: "Pressão de churn (psi)", Type: FieldNumericInput}},
					{ID: "pump_start_type", Label: "Tipo de acionamento", Type: FieldSingleSelect, Options: []string{"Elétrica", "Diesel", "Vapor"}},
					{ID: "pump_run_minutes", Label: "Duração do teste (min)", Type: FieldNumericInput},
					{ID: "pump_test_notes", Label: "Observações do teste", Type: FieldMultiLineText},
				},
			},
			signatureSection(),
		},
	}
}

// WaterTankSchema describes the water storage tank checklist (NFPA 25 ch. 9).
func WaterTankSchema() *FormSchema {
	return &FormSchema{
		ID:      FormWaterTank,
		Title:   "Reservatórios de Água (NFPA 25)",
		Version: "2023.1",
		Sections: []FormSection{
			generalInfoSection(),
			{
				ID:    "tank-condition",
				Title: "Condição do Reservatório",
				Fields: []FormField{
					{ID: "tank_water_level", Label: "Nível de água adequado", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "tank_heating", Label: "Sistema de aquecimento operante (quando aplicável)", Type: FieldRadioTristate, Options: passFailNA},
					{ID: "tank_exterior", Label: "Exterior sem corrosão ou vazamentos", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "tank_level_indicator", Label: "Indicador de nível funcional", Type: FieldBooleanCheckbox},
				},
			},
			{
				ID:    "tank-interior-5y",
				Title: "Inspeção Interna (5 anos)",
				Fields: []FormField{
					{ID: "tank_interior_condition", Label: "Interior sem corrosão, sedimento ou crescimento biológico", Type: FieldRadioTristate, Required: true, Options: passFailNA},
					{ID: "tank_coating", Label: "Revestimento interno íntegro", Type: FieldRadioTristate, Options: passFailNA},
					{ID: "tank_interior_notes", Label: "Observações da inspeção interna", Type: FieldMultiLineText},
				},
				RequiredFrequencies: []Frequency{FrequencyFiveYears},
				ConditionalDisplay:  true,
			},
			signatureSection(),
		},
	}
}

// generalInfoSection is shared by every checklist: property, inspector and
// environment metadata captured before the per-system items.
func generalInfoSection() FormSection {
	return FormSection{
		ID:    "general-info",
		Title: "Informações Gerais",
		Fields: []FormField{
			{ID: "property_name", Label: "Nome da Propriedade", Type: FieldTextInput, Required: true},
			{ID: "property_address", Label: "Endereço", Type: FieldTextInput, Required: true},
			{ID: "building_type", Label: "Tipo de Edificação", Type: FieldSingleSelect, Options: []string{"Comercial", "Industrial", "Residencial", "Misto"}},
			{ID: "total_floor_area", Label: "Área Total de Piso (ft²)", Type: FieldNumericInput},
			{ID: "inspection_date", Label: "Data da Inspeção", Type: FieldDateInput, Required: true},
			{ID: "inspection_type", Label: "Tipo de Inspeção", Type: FieldSingleSelect, Options: []string{"Semanal", "Mensal", "Trimestral", "Semestral", "Anual", "5 Anos"}},
			{ID: "next_inspection_date", Label: "Próxima Inspeção Programada", Type: FieldDateInput},
			{ID: "inspector_name", Label: "Nome do Inspetor", Type: FieldTextInput, Required: true},
			{ID: "inspector_license", Label: "Licença do Inspetor", Type: FieldTextInput},
			{ID: "temperature_f", Label: "Temperatura (°F)", Type: FieldNumericInput},
			{ID: "weather_conditions", Label: "Condições Climáticas", Type: FieldTextInput},
			{ID: "wind_speed_mph", Label: "Velocidade do Vento (mph)", Type: FieldNumericInput},
			{ID: "additional_notes", Label: "Observações Adicionais", Type: FieldMultiLineText},
		},
	}
}

// signatureSection closes every checklist with the two required signature
// blocks.
func signatureSection() FormSection {
	return FormSection{
		ID:    "signatures",
		Title: "Assinaturas",
		Fields: []FormField{
			{ID: "inspector_signature", Label: "Assinatura do Inspetor", Type: FieldSignature, Required: true},
			{ID: "inspector_sign_date", Label: "Data (Inspetor)", Type: FieldDateInput, Required: true},
			{ID: "client_signature", Label: "Assinatura do Cliente", Type: FieldSignature, Required: true},
			{ID: "client_sign_date", Label: "Data (Cliente)", Type: FieldDateInput, Required: true},
		},
	}
}
