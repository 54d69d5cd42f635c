package stubserver

import "learnstyle/internal/soal"

type advice struct {
	explanation string
	advice      string
}

var poleAdvice = map[soal.Dimension]map[string]advice{
	soal.DimensionProcessing: {
		"Aktif": {
			explanation: "Anda belajar paling baik dengan melakukan sesuatu secara langsung dan berdiskusi dengan orang lain.",
			advice:      "Bentuk kelompok belajar, jelaskan materi kepada teman, dan kerjakan latihan segera setelah membaca.",
		},
		"Reflektif": {
			explanation: "Anda cenderung memproses informasi dengan memikirkannya secara mendalam sebelum bertindak.",
			advice:      "Sisihkan waktu untuk merangkum materi dengan kata-kata sendiri dan tuliskan pertanyaan yang muncul.",
		},
		StrengthBalanced: {
			explanation: "Anda seimbang antara belajar sambil mencoba dan belajar sambil merenung.",
			advice:      "Gabungkan diskusi kelompok dengan waktu belajar mandiri sesuai kebutuhan materi.",
		},
	},
	soal.DimensionPerception: {
		"Sensing": {
			explanation: "Anda menyukai fakta, data konkret, dan prosedur yang sudah teruji.",
			advice:      "Cari contoh nyata untuk setiap konsep dan kaitkan teori dengan penerapannya.",
		},
		"Intuitif": {
			explanation: "Anda tertarik pada kemungkinan, hubungan antar konsep, dan gagasan baru.",
			advice:      "Cari interpretasi dan teori yang menghubungkan fakta, dan periksa ulang jawaban agar tidak ceroboh.",
		},
		StrengthBalanced: {
			explanation: "Anda nyaman bekerja dengan fakta konkret maupun konsep abstrak.",
			advice:      "Manfaatkan kedua pendekatan: pahami konsepnya lalu uji dengan contoh nyata.",
		},
	},
	soal.DimensionInput: {
		"Visual": {
			explanation: "Anda paling mudah mengingat apa yang Anda lihat: gambar, diagram, dan bagan.",
			advice:      "Ubah catatan menjadi peta konsep, diagram alur, atau tabel berwarna.",
		},
		"Verbal": {
			explanation: "Anda lebih mudah menyerap penjelasan tertulis maupun lisan.",
			advice:      "Tulis ringkasan materi dan diskusikan penjelasannya dengan teman.",
		},
		StrengthBalanced: {
			explanation: "Anda dapat menyerap informasi visual maupun verbal dengan baik.",
			advice:      "Lengkapi catatan tertulis dengan diagram sederhana.",
		},
	},
	soal.DimensionUnderstanding: {
		"Sekuensial": {
			explanation: "Anda memahami materi melalui langkah-langkah yang runtut dan logis.",
			advice:      "Susun materi dalam urutan yang jelas dan lengkapi langkah yang terlewat dalam penjelasan.",
		},
		"Global": {
			explanation: "Anda memahami materi secara menyeluruh, sering kali dalam lompatan besar.",
			advice:      "Baca gambaran umum bab sebelum mempelajari rinciannya dan kaitkan dengan hal yang sudah dikenal.",
		},
		StrengthBalanced: {
			explanation: "Anda dapat belajar secara bertahap maupun dari gambaran besar.",
			advice:      "Mulai dari gambaran umum, lalu pelajari rinciannya secara berurutan.",
		},
	},
}

// Recommendations builds the recommendation list for a tally, skipping
// the dimensions in omit.
func Recommendations(t Tally, omit map[soal.Dimension]bool) []soal.RecommendationEntry {
	entries := make([]soal.RecommendationEntry, 0, len(soal.Dimensions))
	for _, dim := range soal.Dimensions {
		if omit[dim] {
			continue
		}
		text := poleAdvice[dim][poleKey(dim, t[dim])]
		entries = append(entries, soal.RecommendationEntry{
			Dimension:   dim.Label(),
			Explanation: text.explanation,
			Advice:      text.advice,
		})
	}
	return entries
}

func poleKey(dim soal.Dimension, score int) string {
	if Strength(score) == StrengthBalanced {
		return StrengthBalanced
	}
	if score > 0 {
		return Poles[dim].A
	}
	return Poles[dim].B
}
