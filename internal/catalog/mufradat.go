package catalog

import (
	"kelaskata/internal/models"
	"kelaskata/internal/scoring"
)

// Mufradat is the Arabic vocabulary catalog: Al-Arabiyyah Bayna Yadaik
// Juz II Bab 1 & 2, thirty items per tier. Reading is scored on the bare
// script (no harakat), so it carries the highest stakes together with usage.
var Mufradat = register(&Catalog{
	Key:   "mufradat",
	Name:  "Mufradat Bahasa Arab",
	Tiers: []models.Tier{models.TierLow, models.TierMid, models.TierHigh},
	Rules: scoring.Rules{
		Reading: scoring.PointTable{models.TierLow: 2, models.TierMid: 4, models.TierHigh: 6},
		Meaning: scoring.PointTable{models.TierLow: 1, models.TierMid: 2, models.TierHigh: 3},
		Usage:   scoring.PointTable{models.TierLow: 2, models.TierMid: 4, models.TierHigh: 6},
	},
	items: []models.VocabItem{
		{ID: "a1", PrimaryForm: "نعم", Meaning: "ya", Tier: models.TierLow},
		{ID: "a2", PrimaryForm: "لا", Meaning: "tidak", Tier: models.TierLow},
		{ID: "a3", PrimaryForm: "كيف", Meaning: "bagaimana", Tier: models.TierLow},
		{ID: "a4", PrimaryForm: "ماذا", Meaning: "apa", Tier: models.TierLow},
		{ID: "a5", PrimaryForm: "أين", Meaning: "di mana", Tier: models.TierLow},
		{ID: "a6", PrimaryForm: "متى", Meaning: "kapan", Tier: models.TierLow},
		{ID: "a7", PrimaryForm: "الآن", Meaning: "sekarang", Tier: models.TierLow},
		{ID: "a8", PrimaryForm: "ثم", Meaning: "kemudian", Tier: models.TierLow},
		{ID: "a9", PrimaryForm: "بعد", Meaning: "setelah", Tier: models.TierLow},
		{ID: "a10", PrimaryForm: "قبل", Meaning: "sebelum", Tier: models.TierLow},
		{ID: "a11", PrimaryForm: "في", Meaning: "di", Tier: models.TierLow},
		{ID: "a12", PrimaryForm: "على", Meaning: "di atas", Tier: models.TierLow},
		{ID: "a13", PrimaryForm: "إلى", Meaning: "ke", Tier: models.TierLow},
		{ID: "a14", PrimaryForm: "من", Meaning: "dari", Tier: models.TierLow},
		{ID: "a15", PrimaryForm: "هنا", Meaning: "di sini", Tier: models.TierLow},
		{ID: "a16", PrimaryForm: "هناك", Meaning: "di sana", Tier: models.TierLow},
		{ID: "a17", PrimaryForm: "ذهب", Meaning: "pergi", Tier: models.TierLow},
		{ID: "a18", PrimaryForm: "أكل", Meaning: "makan", Tier: models.TierLow},
		{ID: "a19", PrimaryForm: "شرب", Meaning: "minum", Tier: models.TierLow},
		{ID: "a20", PrimaryForm: "كبير", Meaning: "besar", Tier: models.TierLow},
		{ID: "a21", PrimaryForm: "قليل", Meaning: "sedikit", Tier: models.TierLow},
		{ID: "a22", PrimaryForm: "كثير", Meaning: "banyak", Tier: models.TierLow},
		{ID: "a23", PrimaryForm: "مثل", Meaning: "seperti", Tier: models.TierLow},
		{ID: "a24", PrimaryForm: "قصة", Meaning: "cerita", Tier: models.TierLow},
		{ID: "a25", PrimaryForm: "قال", Meaning: "berkata", Tier: models.TierLow},
		{ID: "a26", PrimaryForm: "ثم", Meaning: "lalu", Tier: models.TierLow},
		{ID: "a27", PrimaryForm: "به", Meaning: "dengannya", Tier: models.TierLow},
		{ID: "a28", PrimaryForm: "له", Meaning: "baginya", Tier: models.TierLow},
		{ID: "a29", PrimaryForm: "منه", Meaning: "darinya", Tier: models.TierLow},
		{ID: "a30", PrimaryForm: "الذي", Meaning: "yang", Tier: models.TierLow},
		{ID: "b1", PrimaryForm: "مريض", Meaning: "sakit", Tier: models.TierMid},
		{ID: "b2", PrimaryForm: "جامعة", Meaning: "universitas", Tier: models.TierMid},
		{ID: "b3", PrimaryForm: "حكمة", Meaning: "hikmah", Tier: models.TierMid},
		{ID: "b4", PrimaryForm: "الناس", Meaning: "manusia", Tier: models.TierMid},
		{ID: "b5", PrimaryForm: "نافع", Meaning: "bermanfaat", Tier: models.TierMid},
		{ID: "b6", PrimaryForm: "طبيب", Meaning: "dokter", Tier: models.TierMid},
		{ID: "b7", PrimaryForm: "دواء", Meaning: "obat", Tier: models.TierMid},
		{ID: "b8", PrimaryForm: "بطن", Meaning: "perut", Tier: models.TierMid},
		{ID: "b9", PrimaryForm: "شفي", Meaning: "sembuh", Tier: models.TierMid},
		{ID: "b10", PrimaryForm: "ألم", Meaning: "rasa sakit", Tier: models.TierMid},
		{ID: "b11", PrimaryForm: "شديد", Meaning: "parah", Tier: models.TierMid},
		{ID: "b12", PrimaryForm: "أمر", Meaning: "memerintah", Tier: models.TierMid},
		{ID: "b13", PrimaryForm: "يسقي", Meaning: "memberi minum", Tier: models.TierMid},
		{ID: "b14", PrimaryForm: "سقى", Meaning: "telah memberi minum", Tier: models.TierMid},
		{ID: "b15", PrimaryForm: "اشترى", Meaning: "membeli", Tier: models.TierMid},
		{ID: "b16", PrimaryForm: "يشتري", Meaning: "membeli", Tier: models.TierMid},
		{ID: "b17", PrimaryForm: "محلات", Meaning: "toko-toko", Tier: models.TierMid},
		{ID: "b18", PrimaryForm: "بيع", Meaning: "penjualan", Tier: models.TierMid},
		{ID: "b19", PrimaryForm: "سوق", Meaning: "pasar", Tier: models.TierMid},
		{ID: "b20", PrimaryForm: "عسل", Meaning: "madu", Tier: models.TierMid},
		{ID: "b21", PrimaryForm: "رسول", Meaning: "rasul", Tier: models.TierMid},
		{ID: "b22", PrimaryForm: "صحابي", Meaning: "sahabat Nabi", Tier: models.TierMid},
		{ID: "b23", PrimaryForm: "سبحان", Meaning: "Maha Suci", Tier: models.TierMid},
		{ID: "b24", PrimaryForm: "مرات", Meaning: "beberapa kali", Tier: models.TierMid},
		{ID: "b25", PrimaryForm: "تناول", Meaning: "mengonsumsi", Tier: models.TierMid},
		{ID: "b26", PrimaryForm: "رياضة", Meaning: "olahraga", Tier: models.TierMid},
		{ID: "b27", PrimaryForm: "كثيرا", Meaning: "banyak (secara kuantitas)", Tier: models.TierMid},
		{ID: "b28", PrimaryForm: "قليل", Meaning: "sedikit (secara kuantitas)", Tier: models.TierMid},
		{ID: "b29", PrimaryForm: "مع ذلك", Meaning: "meskipun begitu", Tier: models.TierMid},
		{ID: "b30", PrimaryForm: "نتيجة", Meaning: "akibat", Tier: models.TierMid},
		{ID: "c1", PrimaryForm: "شفاء", Meaning: "kesembuhan", Tier: models.TierHigh},
		{ID: "c2", PrimaryForm: "علاج", Meaning: "pengobatan", Tier: models.TierHigh},
		{ID: "c3", PrimaryForm: "العلاج بالعسل", Meaning: "terapi madu", Tier: models.TierHigh},
		{ID: "c4", PrimaryForm: "شرب العسل", Meaning: "minum madu", Tier: models.TierHigh},
		{ID: "c5", PrimaryForm: "اشتكى", Meaning: "mengeluh", Tier: models.TierHigh},
		{ID: "c6", PrimaryForm: "أشعر", Meaning: "aku merasa", Tier: models.TierHigh},
		{ID: "c7", PrimaryForm: "تجربة", Meaning: "pengalaman", Tier: models.TierHigh},
		{ID: "c8", PrimaryForm: "عالج", Meaning: "mengobati", Tier: models.TierHigh},
		{ID: "c9", PrimaryForm: "نبوي", Meaning: "kenabian", Tier: models.TierHigh},
		{ID: "c10", PrimaryForm: "محاولة", Meaning: "usaha", Tier: models.TierHigh},
		{ID: "c11", PrimaryForm: "تناول كثيرا", Meaning: "makan banyak", Tier: models.TierHigh},
		{ID: "c12", PrimaryForm: "اتباع", Meaning: "mengikuti", Tier: models.TierHigh},
		{ID: "c13", PrimaryForm: "شكر", Meaning: "ucapan terima kasih", Tier: models.TierHigh},
		{ID: "c14", PrimaryForm: "الحليب", Meaning: "susu", Tier: models.TierHigh},
		{ID: "c15", PrimaryForm: "عصير الفواكه", Meaning: "jus buah", Tier: models.TierHigh},
		{ID: "c16", PrimaryForm: "الحلوى", Meaning: "manisan", Tier: models.TierHigh},
		{ID: "c17", PrimaryForm: "صحة", Meaning: "kesehatan", Tier: models.TierHigh},
		{ID: "c18", PrimaryForm: "تكرار", Meaning: "pengulangan", Tier: models.TierHigh},
		{ID: "c19", PrimaryForm: "متابعة", Meaning: "pemantauan", Tier: models.TierHigh},
		{ID: "c20", PrimaryForm: "تغيير", Meaning: "perubahan", Tier: models.TierHigh},
		{ID: "c21", PrimaryForm: "أثر العلاج", Meaning: "efek pengobatan", Tier: models.TierHigh},
		{ID: "c22", PrimaryForm: "نتيجة التجربة", Meaning: "hasil pengalaman", Tier: models.TierHigh},
		{ID: "c23", PrimaryForm: "شفاء البطن", Meaning: "penyembuhan perut", Tier: models.TierHigh},
		{ID: "c24", PrimaryForm: "تكرار العلاج", Meaning: "pengulangan pengobatan", Tier: models.TierHigh},
		{ID: "c25", PrimaryForm: "حي", Meaning: "lingkungan", Tier: models.TierHigh},
		{ID: "c26", PrimaryForm: "دواء طبيعي", Meaning: "obat alami", Tier: models.TierHigh},
		{ID: "c27", PrimaryForm: "حمية", Meaning: "diet", Tier: models.TierHigh},
		{ID: "c28", PrimaryForm: "أثر", Meaning: "dampak", Tier: models.TierHigh},
		{ID: "c29", PrimaryForm: "تكرار العلاج", Meaning: "pengulangan pengobatan", Tier: models.TierHigh},
		{ID: "c30", PrimaryForm: "شفاء كامل", Meaning: "sembuh total", Tier: models.TierHigh},
	},
})
