package services

import (
	"strings"

	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

type diagnosisRule struct {
	keywords        []string
	symptom         string
	diagnosis       string
	recommendations []*domain.Recommendation
}

var diagnosisRules = []diagnosisRule{
	{
		keywords:  []string{"starter", "distarter", "mogok", "tidak mau hidup", "susah hidup"},
		symptom:   "Motor sulit distarter",
		diagnosis: "Kemungkinan aki sudah lemah atau sistem pengapian bermasalah. Perlu pengecekan aki dan busi.",
		recommendations: []*domain.Recommendation{
			{Action: "Cek tegangan aki", Priority: domain.PriorityHigh, EstimatedCost: "Rp 50.000 - 150.000"},
			{Action: "Bersihkan atau ganti busi", Priority: domain.PriorityHigh, EstimatedCost: "Rp 20.000 - 50.000"},
			{Action: "Setel karburator/injeksi", Priority: domain.PriorityMedium, EstimatedCost: "Rp 100.000 - 200.000"},
		},
	},
	{
		keywords:  []string{"getar", "getaran", "bergetar", "goyang", "oleng"},
		symptom:   "Getaran tidak normal",
		diagnosis: "Kemungkinan bearing roda sudah aus atau velg bengkok. Perlu pengecekan komponen kaki-kaki dan kemudi.",
		recommendations: []*domain.Recommendation{
			{Action: "Cek bearing roda", Priority: domain.PriorityHigh, EstimatedCost: "Rp 150.000 - 300.000"},
			{Action: "Periksa velg dan rim", Priority: domain.PriorityMedium, EstimatedCost: "Rp 50.000 - 100.000"},
			{Action: "Balancing roda", Priority: domain.PriorityMedium, EstimatedCost: "Rp 30.000 - 60.000"},
		},
	},
	{
		keywords:  []string{"rem", "blong", "pakem"},
		symptom:   "Pengereman kurang optimal",
		diagnosis: "Kampas rem kemungkinan sudah tipis atau minyak rem perlu diganti.",
		recommendations: []*domain.Recommendation{
			{Action: "Ganti kampas rem", Priority: domain.PriorityHigh, EstimatedCost: "Rp 50.000 - 150.000"},
			{Action: "Kuras minyak rem", Priority: domain.PriorityMedium, EstimatedCost: "Rp 30.000 - 75.000"},
		},
	},
	{
		keywords:  []string{"asap", "oli", "boros"},
		symptom:   "Konsumsi oli atau asap knalpot berlebih",
		diagnosis: "Kemungkinan ring piston atau seal klep sudah aus sehingga oli ikut terbakar.",
		recommendations: []*domain.Recommendation{
			{Action: "Cek kompresi mesin", Priority: domain.PriorityHigh, EstimatedCost: "Rp 50.000 - 100.000"},
			{Action: "Ganti ring piston dan seal klep", Priority: domain.PriorityMedium, EstimatedCost: "Rp 300.000 - 750.000"},
		},
	},
	{
		keywords:  []string{"panas", "overheat"},
		symptom:   "Mesin cepat panas",
		diagnosis: "Sistem pendinginan kurang optimal, periksa cairan radiator dan kipas.",
		recommendations: []*domain.Recommendation{
			{Action: "Cek dan tambah air radiator", Priority: domain.PriorityHigh, EstimatedCost: "Rp 25.000 - 60.000"},
			{Action: "Periksa kipas radiator", Priority: domain.PriorityMedium, EstimatedCost: "Rp 50.000 - 200.000"},
		},
	},
	{
		keywords:  []string{"rantai", "gir", "gemeretak"},
		symptom:   "Suara dari rantai atau gir",
		diagnosis: "Rantai kendur atau gir sudah aus.",
		recommendations: []*domain.Recommendation{
			{Action: "Setel dan lumasi rantai", Priority: domain.PriorityMedium, EstimatedCost: "Rp 15.000 - 30.000"},
			{Action: "Ganti gear set", Priority: domain.PriorityLow, EstimatedCost: "Rp 250.000 - 500.000"},
		},
	},
	{
		keywords:  []string{"lampu", "klakson", "aki", "kelistrikan"},
		symptom:   "Gangguan kelistrikan",
		diagnosis: "Kemungkinan aki soak, sekring putus, atau kabel kelistrikan bermasalah.",
		recommendations: []*domain.Recommendation{
			{Action: "Cek aki dan sistem pengisian", Priority: domain.PriorityHigh, EstimatedCost: "Rp 50.000 - 150.000"},
			{Action: "Periksa sekring dan kabel", Priority: domain.PriorityMedium, EstimatedCost: "Rp 20.000 - 100.000"},
		},
	},
}

var genericAnalysis = domain.Analysis{
	Symptoms:  []string{"Keluhan umum"},
	Diagnosis: "Gejala belum dapat dipastikan. Disarankan pemeriksaan menyeluruh di bengkel.",
	Recommendations: []*domain.Recommendation{
		{Action: "Pemeriksaan umum di bengkel resmi", Priority: domain.PriorityMedium, EstimatedCost: "Rp 50.000 - 150.000"},
	},
}

// AnalyzeComplaint matches a free-form complaint against the keyword rules and
// returns the canned symptoms, diagnosis and recommendations of every match,
// in rule order.
func AnalyzeComplaint(description string) domain.Analysis {
	text := strings.ToLower(description)
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	var analysis domain.Analysis
	var diagnoses []string
	for _, rule := range diagnosisRules {
		if !matchesAny(text, words, rule.keywords) {
			continue
		}
		analysis.Symptoms = append(analysis.Symptoms, rule.symptom)
		diagnoses = append(diagnoses, rule.diagnosis)
		for _, rec := range rule.recommendations {
			copied := *rec
			analysis.Recommendations = append(analysis.Recommendations, &copied)
		}
	}

	if len(diagnoses) == 0 {
		generic := genericAnalysis
		generic.Symptoms = append([]string(nil), genericAnalysis.Symptoms...)
		generic.Recommendations = nil
		for _, rec := range genericAnalysis.Recommendations {
			copied := *rec
			generic.Recommendations = append(generic.Recommendations, &copied)
		}
		return generic
	}

	analysis.Diagnosis = strings.Join(diagnoses, " ")
	return analysis
}

// matchesAny matches single-word keywords against whole words so "rem" does
// not fire on "premium"; phrases are matched as substrings.
func matchesAny(text string, words []string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(keyword, " ") {
			if strings.Contains(text, keyword) {
				return true
			}
			continue
		}
		for _, word := range words {
			if word == keyword {
				return true
			}
		}
	}
	return false
}
