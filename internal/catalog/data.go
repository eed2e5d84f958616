package catalog

import "aviengine/internal/model"

// Default builds the catalog shipped with the engine: the high-signal core
// of the transport-operator interview, covering all eight categories, every
// consistency-pair id and every financial-coherence id.
func Default() (*Catalog, error) {
	return New(DefaultQuestions())
}

// DefaultQuestions returns the default question dataset. Callers get a
// fresh slice; the catalog built from it is what components should share.
func DefaultQuestions() []model.Question {
	return []model.Question{
		// basic_info
		{
			ID:                   "nombre_completo",
			Category:             model.CategoryBasicInfo,
			Question:             "¿Cuál es su nombre completo?",
			Weight:               3,
			StressLevel:          1,
			EstimatedTime:        10,
			RiskImpact:           model.RiskImpactLow,
			VerificationTriggers: []string{"identidad"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      3,
				StressIndicatorPatterns:   []string{"titubeo"},
				TruthVerificationKeywords: []string{"me_llamo"},
			},
		},
		{
			ID:                   "edad",
			Category:             model.CategoryBasicInfo,
			Question:             "¿Qué edad tiene?",
			Weight:               6,
			StressLevel:          1,
			EstimatedTime:        8,
			RiskImpact:           model.RiskImpactLow,
			VerificationTriggers: []string{"identidad", "experiencia"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      3,
				StressIndicatorPatterns:   []string{"no_recuerdo"},
				TruthVerificationKeywords: []string{"tengo", "cumplo"},
			},
		},
		{
			ID:                   "anos_en_ruta",
			Category:             model.CategoryBasicInfo,
			Question:             "¿Cuántos años lleva trabajando en esta ruta?",
			Weight:               7,
			StressLevel:          2,
			EstimatedTime:        12,
			RiskImpact:           model.RiskImpactMedium,
			VerificationTriggers: []string{"experiencia", "operacion_diaria"},
			FollowUpQuestions:    []string{"¿En qué año empezó a trabajar la ruta?"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      5,
				StressIndicatorPatterns:   []string{"mas_o_menos", "aproximadamente"},
				TruthVerificationKeywords: []string{"desde", "exactamente"},
			},
		},

		// daily_operation
		{
			ID:                   "tipo_operacion",
			Category:             model.CategoryDailyOperation,
			Question:             "¿Usted es dueño de la unidad o trabaja como chofer?",
			Weight:               6,
			StressLevel:          2,
			EstimatedTime:        12,
			RiskImpact:           model.RiskImpactMedium,
			VerificationTriggers: []string{"operacion_diaria", "patrimonio"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      5,
				StressIndicatorPatterns:   []string{"es_complicado"},
				TruthVerificationKeywords: []string{"dueno", "propietario", "chofer"},
			},
		},
		{
			ID:                   "vueltas_por_dia",
			Category:             model.CategoryDailyOperation,
			Question:             "¿Cuántas vueltas completas da al día?",
			Weight:               8,
			StressLevel:          3,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"operacion_diaria", "ingresos"},
			FollowUpQuestions:    []string{"¿Cuánto dura una vuelta completa?"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      6,
				StressIndicatorPatterns:   []string{"depende", "mas_o_menos"},
				TruthVerificationKeywords: []string{"todos_los_dias", "siempre", "exactamente"},
			},
		},
		{
			ID:                   "pasajeros_por_vuelta",
			Category:             model.CategoryDailyOperation,
			Question:             "¿Cuántos pasajeros sube en promedio por vuelta?",
			Weight:               7,
			StressLevel:          3,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"operacion_diaria", "ingresos"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      6,
				StressIndicatorPatterns:   []string{"depende", "varia_mucho"},
				TruthVerificationKeywords: []string{"en_promedio", "normalmente"},
			},
		},
		{
			ID:                   "tarifa_por_pasajero",
			Category:             model.CategoryDailyOperation,
			Question:             "¿Cuál es la tarifa que cobra por pasajero?",
			Weight:               7,
			StressLevel:          2,
			EstimatedTime:        10,
			RiskImpact:           model.RiskImpactMedium,
			VerificationTriggers: []string{"operacion_diaria", "ingresos"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      4,
				StressIndicatorPatterns:   []string{"depende"},
				TruthVerificationKeywords: []string{"pesos", "tarifa"},
			},
		},

		// operational_costs
		{
			ID:                   "gasto_diario_gasolina",
			Category:             model.CategoryOperationalCosts,
			Question:             "¿Cuánto gasta en gasolina al día?",
			Weight:               8,
			StressLevel:          3,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"gastos", "operacion_diaria"},
			FollowUpQuestions:    []string{"¿Cada cuánto carga el tanque?"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      6,
				StressIndicatorPatterns:   []string{"mas_o_menos", "no_llevo_cuenta"},
				TruthVerificationKeywords: []string{"diario", "exactamente", "pesos"},
			},
		},
		{
			ID:                   "vueltas_por_tanque",
			Category:             model.CategoryOperationalCosts,
			Question:             "¿Cuántas vueltas le rinde un tanque lleno?",
			Weight:               6,
			StressLevel:          3,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactMedium,
			VerificationTriggers: []string{"gastos", "operacion_diaria"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      7,
				StressIndicatorPatterns:   []string{"depende", "no_se"},
				TruthVerificationKeywords: []string{"rinde", "tanque"},
			},
		},
		{
			ID:                   "pago_semanal_tarjeta",
			Category:             model.CategoryOperationalCosts,
			Question:             "¿Cuánto paga a la semana por la cuenta de la unidad?",
			Weight:               7,
			StressLevel:          3,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"gastos", "credito"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      6,
				StressIndicatorPatterns:   []string{"mas_o_menos"},
				TruthVerificationKeywords: []string{"semanal", "exactamente"},
			},
		},
		{
			ID:                   "gastos_mordidas_cuotas",
			Category:             model.CategoryOperationalCosts,
			Question:             "¿Cuánto paga de cuotas o apoyos en la ruta a la semana?",
			Weight:               9,
			StressLevel:          5,
			EstimatedTime:        20,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"gastos", "riesgo"},
			FollowUpQuestions:    []string{"¿A quién se le entrega ese pago?"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      8,
				StressIndicatorPatterns:   []string{"no_pago_nada", "eso_no_existe", "prefiero_no_hablar"},
				TruthVerificationKeywords: []string{"si_pago", "cada_semana"},
			},
		},

		// business_structure
		{
			ID:                   "ingresos_promedio_diarios",
			Category:             model.CategoryBusinessStructure,
			Question:             "¿Cuáles son sus ingresos promedio al día?",
			Weight:               9,
			StressLevel:          4,
			EstimatedTime:        20,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"ingresos", "operacion_diaria"},
			FollowUpQuestions:    []string{"¿Ese monto es antes o después de gastos?"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      8,
				StressIndicatorPatterns:   []string{"mas_o_menos", "depende", "varia_mucho"},
				TruthVerificationKeywords: []string{"diario", "libres", "exactamente"},
			},
		},
		{
			ID:                   "coherencia_ingresos_gastos",
			Category:             model.CategoryBusinessStructure,
			Question:             "Si sus gastos suben, ¿de dónde saldría el pago del crédito?",
			Weight:               9,
			StressLevel:          4,
			EstimatedTime:        25,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"ingresos", "gastos", "pago"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      10,
				StressIndicatorPatterns:   []string{"no_habia_pensado", "no_se"},
				TruthVerificationKeywords: []string{"ahorro", "plan", "apartado"},
			},
		},

		// assets_patrimony
		{
			ID:                   "valor_unidad_transporte",
			Category:             model.CategoryAssetsPatrimony,
			Question:             "¿En cuánto valúa su unidad de transporte?",
			Weight:               7,
			StressLevel:          3,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactMedium,
			VerificationTriggers: []string{"patrimonio"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      7,
				StressIndicatorPatterns:   []string{"no_se", "mas_o_menos"},
				TruthVerificationKeywords: []string{"vale", "pesos"},
			},
		},
		{
			ID:                   "propiedad_unidad",
			Category:             model.CategoryAssetsPatrimony,
			Question:             "¿La unidad está a su nombre?",
			Weight:               8,
			StressLevel:          3,
			EstimatedTime:        12,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"patrimonio", "identidad"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      5,
				StressIndicatorPatterns:   []string{"es_complicado", "todavia_no"},
				TruthVerificationKeywords: []string{"a_mi_nombre", "factura"},
			},
		},
		{
			ID:                   "ahorros_emergencia",
			Category:             model.CategoryAssetsPatrimony,
			Question:             "¿Cuenta con ahorros para una emergencia?",
			Weight:               6,
			StressLevel:          3,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactMedium,
			VerificationTriggers: []string{"patrimonio", "pago"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      6,
				StressIndicatorPatterns:   []string{"casi_no", "ahorita_no"},
				TruthVerificationKeywords: []string{"si_tengo", "guardado"},
			},
		},

		// credit_history
		{
			ID:                   "creditos_anteriores",
			Category:             model.CategoryCreditHistory,
			Question:             "¿Ha tenido créditos anteriormente?",
			Weight:               8,
			StressLevel:          4,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"credito"},
			FollowUpQuestions:    []string{"¿Con qué institución fue ese crédito?"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      6,
				StressIndicatorPatterns:   []string{"hace_mucho", "no_recuerdo"},
				TruthVerificationKeywords: []string{"si_tuve", "pague"},
			},
		},
		{
			ID:                   "problemas_pagos",
			Category:             model.CategoryCreditHistory,
			Question:             "¿Alguna vez ha tenido problemas para pagar un crédito?",
			Weight:               9,
			StressLevel:          5,
			EstimatedTime:        20,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"credito", "pago", "riesgo"},
			FollowUpQuestions:    []string{"¿Cómo resolvió ese atraso?"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      8,
				StressIndicatorPatterns:   []string{"nunca", "eso_no", "prefiero_no_hablar"},
				TruthVerificationKeywords: []string{"una_vez", "me_atrase", "lo_pague"},
			},
		},
		{
			ID:                   "compromisos_existentes",
			Category:             model.CategoryCreditHistory,
			Question:             "¿Qué deudas o compromisos de pago tiene actualmente?",
			Weight:               8,
			StressLevel:          4,
			EstimatedTime:        20,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"credito", "gastos"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      8,
				StressIndicatorPatterns:   []string{"ninguna", "casi_nada"},
				TruthVerificationKeywords: []string{"debo", "pago_mensual"},
			},
		},

		// payment_intention
		{
			ID:                   "intencion_pago",
			Category:             model.CategoryPaymentIntention,
			Question:             "Si un mes no le alcanza, ¿qué haría para cumplir el pago?",
			Weight:               9,
			StressLevel:          4,
			EstimatedTime:        25,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"pago", "riesgo"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      10,
				StressIndicatorPatterns:   []string{"no_se", "ya_veria"},
				TruthVerificationKeywords: []string{"trabajaria_mas", "ahorro", "familia"},
			},
		},
		{
			ID:                   "prioridad_deudas",
			Category:             model.CategoryPaymentIntention,
			Question:             "Entre sus gastos, ¿qué lugar ocupa el pago de la unidad?",
			Weight:               8,
			StressLevel:          4,
			EstimatedTime:        20,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"pago", "gastos"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      8,
				StressIndicatorPatterns:   []string{"depende", "luego_veo"},
				TruthVerificationKeywords: []string{"primero", "prioridad"},
			},
		},
		{
			ID:                   "confirmacion_datos_criticos",
			Category:             model.CategoryPaymentIntention,
			Question:             "¿Confirma que los ingresos y gastos que declaró son correctos?",
			Weight:               9,
			StressLevel:          4,
			EstimatedTime:        15,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"ingresos", "gastos", "pago"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      6,
				StressIndicatorPatterns:   []string{"creo_que", "tal_vez"},
				TruthVerificationKeywords: []string{"confirmo", "correcto", "exactamente"},
			},
		},

		// risk_evaluation
		{
			ID:                   "seguro_unidad",
			Category:             model.CategoryRiskEvaluation,
			Question:             "¿Su unidad cuenta con seguro vigente?",
			Weight:               7,
			StressLevel:          3,
			EstimatedTime:        12,
			RiskImpact:           model.RiskImpactMedium,
			VerificationTriggers: []string{"riesgo", "patrimonio"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      5,
				StressIndicatorPatterns:   []string{"se_vencio", "ahorita_no"},
				TruthVerificationKeywords: []string{"vigente", "poliza"},
			},
		},
		{
			ID:                   "plan_contingencia",
			Category:             model.CategoryRiskEvaluation,
			Question:             "Si la unidad se descompone una semana, ¿cómo cubriría sus pagos?",
			Weight:               8,
			StressLevel:          4,
			EstimatedTime:        25,
			RiskImpact:           model.RiskImpactHigh,
			VerificationTriggers: []string{"riesgo", "pago"},
			Analytics: model.QuestionAnalytics{
				ExpectedResponseTime:      10,
				StressIndicatorPatterns:   []string{"no_se", "no_habia_pensado"},
				TruthVerificationKeywords: []string{"ahorro", "otra_unidad", "plan"},
			},
		},
	}
}
