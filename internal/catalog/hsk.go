package catalog

import (
	"kelaskata/internal/models"
	"kelaskata/internal/scoring"
)

// HSK is the Mandarin vocabulary catalog, thirty items per HSK band 1-5.
var HSK = register(&Catalog{
	Key:   "hsk",
	Name:  "Kosakata Mandarin HSK",
	Tiers: []models.Tier{"hsk1", "hsk2", "hsk3", "hsk4", "hsk5"},
	Rules: scoring.Rules{
		Reading: scoring.PointTable{"hsk1": 2, "hsk2": 3, "hsk3": 4, "hsk4": 5, "hsk5": 6},
		Meaning: scoring.PointTable{"hsk1": 1, "hsk2": 2, "hsk3": 2, "hsk4": 3, "hsk5": 3},
		Usage:   scoring.PointTable{"hsk1": 2, "hsk2": 3, "hsk3": 4, "hsk4": 5, "hsk5": 6},
	},
	items: []models.VocabItem{
		{ID: "hsk1_001", PrimaryForm: "爱", Reading: "ài", Meaning: "Cinta", Tier: "hsk1"},
		{ID: "hsk1_002", PrimaryForm: "八", Reading: "bā", Meaning: "Delapan", Tier: "hsk1"},
		{ID: "hsk1_003", PrimaryForm: "爸爸", Reading: "bàba", Meaning: "Ayah", Tier: "hsk1"},
		{ID: "hsk1_004", PrimaryForm: "杯子", Reading: "bēizi", Meaning: "Gelas", Tier: "hsk1"},
		{ID: "hsk1_005", PrimaryForm: "北京", Reading: "Běijīng", Meaning: "Beijing", Tier: "hsk1"},
		{ID: "hsk1_006", PrimaryForm: "本", Reading: "běn", Meaning: "Satuan buku", Tier: "hsk1"},
		{ID: "hsk1_007", PrimaryForm: "不", Reading: "bù", Meaning: "Tidak", Tier: "hsk1"},
		{ID: "hsk1_008", PrimaryForm: "不客气", Reading: "bú kèqi", Meaning: "Sama-sama", Tier: "hsk1"},
		{ID: "hsk1_009", PrimaryForm: "菜", Reading: "cài", Meaning: "Sayur/Hidangan", Tier: "hsk1"},
		{ID: "hsk1_010", PrimaryForm: "茶", Reading: "chá", Meaning: "Teh", Tier: "hsk1"},
		{ID: "hsk1_011", PrimaryForm: "吃", Reading: "chī", Meaning: "Makan", Tier: "hsk1"},
		{ID: "hsk1_012", PrimaryForm: "出租车", Reading: "chūzūchē", Meaning: "Taksi", Tier: "hsk1"},
		{ID: "hsk1_013", PrimaryForm: "打电话", Reading: "dǎ diànhuà", Meaning: "Menelepon", Tier: "hsk1"},
		{ID: "hsk1_014", PrimaryForm: "大", Reading: "dà", Meaning: "Besar", Tier: "hsk1"},
		{ID: "hsk1_015", PrimaryForm: "的", Reading: "de", Meaning: "Partikel kepemilikan", Tier: "hsk1"},
		{ID: "hsk1_016", PrimaryForm: "点", Reading: "diǎn", Meaning: "Jam/Titik", Tier: "hsk1"},
		{ID: "hsk1_017", PrimaryForm: "电脑", Reading: "diànnǎo", Meaning: "Komputer", Tier: "hsk1"},
		{ID: "hsk1_018", PrimaryForm: "电视", Reading: "diànshì", Meaning: "Televisi", Tier: "hsk1"},
		{ID: "hsk1_019", PrimaryForm: "电影", Reading: "diànyǐng", Meaning: "Film", Tier: "hsk1"},
		{ID: "hsk1_020", PrimaryForm: "东西", Reading: "dōngxi", Meaning: "Barang", Tier: "hsk1"},
		{ID: "hsk1_021", PrimaryForm: "都", Reading: "dōu", Meaning: "Semua", Tier: "hsk1"},
		{ID: "hsk1_022", PrimaryForm: "读", Reading: "dú", Meaning: "Membaca", Tier: "hsk1"},
		{ID: "hsk1_023", PrimaryForm: "对不起", Reading: "duìbuqǐ", Meaning: "Maaf", Tier: "hsk1"},
		{ID: "hsk1_024", PrimaryForm: "多", Reading: "duō", Meaning: "Banyak", Tier: "hsk1"},
		{ID: "hsk1_025", PrimaryForm: "多少", Reading: "duōshao", Meaning: "Berapa", Tier: "hsk1"},
		{ID: "hsk1_026", PrimaryForm: "儿子", Reading: "érzi", Meaning: "Anak laki-laki", Tier: "hsk1"},
		{ID: "hsk1_027", PrimaryForm: "二", Reading: "èr", Meaning: "Dua", Tier: "hsk1"},
		{ID: "hsk1_028", PrimaryForm: "饭店", Reading: "fàndiàn", Meaning: "Restoran", Tier: "hsk1"},
		{ID: "hsk1_029", PrimaryForm: "飞机", Reading: "fēijī", Meaning: "Pesawat", Tier: "hsk1"},
		{ID: "hsk1_030", PrimaryForm: "分钟", Reading: "fēnzhōng", Meaning: "Menit", Tier: "hsk1"},
		{ID: "hsk2_001", PrimaryForm: "吧", Reading: "ba", Meaning: "Partikel modal", Tier: "hsk2"},
		{ID: "hsk2_002", PrimaryForm: "白", Reading: "bái", Meaning: "Putih", Tier: "hsk2"},
		{ID: "hsk2_003", PrimaryForm: "百", Reading: "bǎi", Meaning: "Seratus", Tier: "hsk2"},
		{ID: "hsk2_004", PrimaryForm: "帮忙", Reading: "bāngmáng", Meaning: "Membantu", Tier: "hsk2"},
		{ID: "hsk2_005", PrimaryForm: "报纸", Reading: "bàozhǐ", Meaning: "Koran", Tier: "hsk2"},
		{ID: "hsk2_006", PrimaryForm: "比", Reading: "bǐ", Meaning: "Dibanding", Tier: "hsk2"},
		{ID: "hsk2_007", PrimaryForm: "别", Reading: "bié", Meaning: "Jangan", Tier: "hsk2"},
		{ID: "hsk2_008", PrimaryForm: "宾馆", Reading: "bīnguǎn", Meaning: "Hotel", Tier: "hsk2"},
		{ID: "hsk2_009", PrimaryForm: "长", Reading: "cháng", Meaning: "Panjang", Tier: "hsk2"},
		{ID: "hsk2_010", PrimaryForm: "唱歌", Reading: "chànggē", Meaning: "Bernyanyi", Tier: "hsk2"},
		{ID: "hsk2_011", PrimaryForm: "出", Reading: "chū", Meaning: "Keluar", Tier: "hsk2"},
		{ID: "hsk2_012", PrimaryForm: "穿", Reading: "chuān", Meaning: "Memakai", Tier: "hsk2"},
		{ID: "hsk2_013", PrimaryForm: "床", Reading: "chuáng", Meaning: "Tempat tidur", Tier: "hsk2"},
		{ID: "hsk2_014", PrimaryForm: "次", Reading: "cì", Meaning: "Kali", Tier: "hsk2"},
		{ID: "hsk2_015", PrimaryForm: "从", Reading: "cóng", Meaning: "Dari", Tier: "hsk2"},
		{ID: "hsk2_016", PrimaryForm: "错", Reading: "cuò", Meaning: "Salah", Tier: "hsk2"},
		{ID: "hsk2_017", PrimaryForm: "打篮球", Reading: "dǎ lánqiú", Meaning: "Main basket", Tier: "hsk2"},
		{ID: "hsk2_018", PrimaryForm: "大家", Reading: "dàjiā", Meaning: "Semua orang", Tier: "hsk2"},
		{ID: "hsk2_019", PrimaryForm: "到", Reading: "dào", Meaning: "Sampai", Tier: "hsk2"},
		{ID: "hsk2_020", PrimaryForm: "得", Reading: "de", Meaning: "Partikel hasil", Tier: "hsk2"},
		{ID: "hsk2_021", PrimaryForm: "等", Reading: "děng", Meaning: "Menunggu", Tier: "hsk2"},
		{ID: "hsk2_022", PrimaryForm: "弟弟", Reading: "dìdi", Meaning: "Adik laki-laki", Tier: "hsk2"},
		{ID: "hsk2_023", PrimaryForm: "第一", Reading: "dì yī", Meaning: "Pertama", Tier: "hsk2"},
		{ID: "hsk2_024", PrimaryForm: "懂", Reading: "dǒng", Meaning: "Mengerti", Tier: "hsk2"},
		{ID: "hsk2_025", PrimaryForm: "对", Reading: "duì", Meaning: "Benar", Tier: "hsk2"},
		{ID: "hsk2_026", PrimaryForm: "房间", Reading: "fángjiān", Meaning: "Kamar", Tier: "hsk2"},
		{ID: "hsk2_027", PrimaryForm: "非常", Reading: "fēicháng", Meaning: "Sangat", Tier: "hsk2"},
		{ID: "hsk2_028", PrimaryForm: "服务员", Reading: "fúwùyuán", Meaning: "Pelayan", Tier: "hsk2"},
		{ID: "hsk2_029", PrimaryForm: "高", Reading: "gāo", Meaning: "Tinggi", Tier: "hsk2"},
		{ID: "hsk2_030", PrimaryForm: "告诉", Reading: "gàosu", Meaning: "Memberitahu", Tier: "hsk2"},
		{ID: "hsk3_001", PrimaryForm: "阿姨", Reading: "āyí", Meaning: "Bibi", Tier: "hsk3"},
		{ID: "hsk3_002", PrimaryForm: "啊", Reading: "a", Meaning: "Partikel ekspresi", Tier: "hsk3"},
		{ID: "hsk3_003", PrimaryForm: "矮", Reading: "ǎi", Meaning: "Pendek", Tier: "hsk3"},
		{ID: "hsk3_004", PrimaryForm: "爱好", Reading: "àihào", Meaning: "Hobi", Tier: "hsk3"},
		{ID: "hsk3_005", PrimaryForm: "安静", Reading: "ānjìng", Meaning: "Tenang", Tier: "hsk3"},
		{ID: "hsk3_006", PrimaryForm: "把", Reading: "bǎ", Meaning: "Partikel objek", Tier: "hsk3"},
		{ID: "hsk3_007", PrimaryForm: "班", Reading: "bān", Meaning: "Kelas", Tier: "hsk3"},
		{ID: "hsk3_008", PrimaryForm: "搬", Reading: "bān", Meaning: "Pindah", Tier: "hsk3"},
		{ID: "hsk3_009", PrimaryForm: "半", Reading: "bàn", Meaning: "Setengah", Tier: "hsk3"},
		{ID: "hsk3_010", PrimaryForm: "办法", Reading: "bànfǎ", Meaning: "Cara", Tier: "hsk3"},
		{ID: "hsk3_011", PrimaryForm: "办公室", Reading: "bàngōngshì", Meaning: "Kantor", Tier: "hsk3"},
		{ID: "hsk3_012", PrimaryForm: "帮助", Reading: "bāngzhù", Meaning: "Membantu", Tier: "hsk3"},
		{ID: "hsk3_013", PrimaryForm: "包", Reading: "bāo", Meaning: "Tas", Tier: "hsk3"},
		{ID: "hsk3_014", PrimaryForm: "饱", Reading: "bǎo", Meaning: "Kenyang", Tier: "hsk3"},
		{ID: "hsk3_015", PrimaryForm: "北方", Reading: "běifāng", Meaning: "Utara", Tier: "hsk3"},
		{ID: "hsk3_016", PrimaryForm: "被", Reading: "bèi", Meaning: "Oleh (pasif)", Tier: "hsk3"},
		{ID: "hsk3_017", PrimaryForm: "鼻子", Reading: "bízi", Meaning: "Hidung", Tier: "hsk3"},
		{ID: "hsk3_018", PrimaryForm: "比较", Reading: "bǐjiào", Meaning: "Cukup/Perbandingan", Tier: "hsk3"},
		{ID: "hsk3_019", PrimaryForm: "比赛", Reading: "bǐsài", Meaning: "Pertandingan", Tier: "hsk3"},
		{ID: "hsk3_020", PrimaryForm: "必须", Reading: "bìxū", Meaning: "Harus", Tier: "hsk3"},
		{ID: "hsk3_021", PrimaryForm: "变化", Reading: "biànhuà", Meaning: "Perubahan", Tier: "hsk3"},
		{ID: "hsk3_022", PrimaryForm: "表示", Reading: "biǎoshì", Meaning: "Menunjukkan", Tier: "hsk3"},
		{ID: "hsk3_023", PrimaryForm: "表演", Reading: "biǎoyǎn", Meaning: "Pertunjukan", Tier: "hsk3"},
		{ID: "hsk3_024", PrimaryForm: "别人", Reading: "biérén", Meaning: "Orang lain", Tier: "hsk3"},
		{ID: "hsk3_025", PrimaryForm: "冰箱", Reading: "bīngxiāng", Meaning: "Kulkas", Tier: "hsk3"},
		{ID: "hsk3_026", PrimaryForm: "不但...而且", Reading: "búdàn...érqiě", Meaning: "Tidak hanya...tapi juga", Tier: "hsk3"},
		{ID: "hsk3_027", PrimaryForm: "菜单", Reading: "càidān", Meaning: "Menu", Tier: "hsk3"},
		{ID: "hsk3_028", PrimaryForm: "参加", Reading: "cānjiā", Meaning: "Ikut serta", Tier: "hsk3"},
		{ID: "hsk3_029", PrimaryForm: "草", Reading: "cǎo", Meaning: "Rumput", Tier: "hsk3"},
		{ID: "hsk3_030", PrimaryForm: "层", Reading: "céng", Meaning: "Lantai/Lapis", Tier: "hsk3"},
		{ID: "hsk4_001", PrimaryForm: "爱情", Reading: "àiqíng", Meaning: "Cinta (romantis)", Tier: "hsk4"},
		{ID: "hsk4_002", PrimaryForm: "安排", Reading: "ānpái", Meaning: "Mengatur", Tier: "hsk4"},
		{ID: "hsk4_003", PrimaryForm: "安全", Reading: "ānquán", Meaning: "Keamanan", Tier: "hsk4"},
		{ID: "hsk4_004", PrimaryForm: "按时", Reading: "ànshí", Meaning: "Tepat waktu", Tier: "hsk4"},
		{ID: "hsk4_005", PrimaryForm: "按照", Reading: "ànzhào", Meaning: "Menurut", Tier: "hsk4"},
		{ID: "hsk4_006", PrimaryForm: "百分之", Reading: "bǎifēnzhī", Meaning: "Persen", Tier: "hsk4"},
		{ID: "hsk4_007", PrimaryForm: "棒", Reading: "bàng", Meaning: "Hebat", Tier: "hsk4"},
		{ID: "hsk4_008", PrimaryForm: "包括", Reading: "bāokuò", Meaning: "Termasuk", Tier: "hsk4"},
		{ID: "hsk4_009", PrimaryForm: "保护", Reading: "bǎohù", Meaning: "Melindungi", Tier: "hsk4"},
		{ID: "hsk4_010", PrimaryForm: "保证", Reading: "bǎozhèng", Meaning: "Menjamin", Tier: "hsk4"},
		{ID: "hsk4_011", PrimaryForm: "抱", Reading: "bào", Meaning: "Memeluk", Tier: "hsk4"},
		{ID: "hsk4_012", PrimaryForm: "抱歉", Reading: "bàoqiàn", Meaning: "Minta maaf", Tier: "hsk4"},
		{ID: "hsk4_013", PrimaryForm: "报名", Reading: "bàomíng", Meaning: "Mendaftar", Tier: "hsk4"},
		{ID: "hsk4_014", PrimaryForm: "倍", Reading: "bèi", Meaning: "Kali lipat", Tier: "hsk4"},
		{ID: "hsk4_015", PrimaryForm: "本来", Reading: "běnlái", Meaning: "Awalnya", Tier: "hsk4"},
		{ID: "hsk4_016", PrimaryForm: "笨", Reading: "bèn", Meaning: "Bodoh", Tier: "hsk4"},
		{ID: "hsk4_017", PrimaryForm: "比如", Reading: "bǐrú", Meaning: "Misalnya", Tier: "hsk4"},
		{ID: "hsk4_018", PrimaryForm: "毕业", Reading: "bìyè", Meaning: "Lulus", Tier: "hsk4"},
		{ID: "hsk4_019", PrimaryForm: "遍", Reading: "biàn", Meaning: "Kali (pengulangan)", Tier: "hsk4"},
		{ID: "hsk4_020", PrimaryForm: "标准", Reading: "biāozhǔn", Meaning: "Standar", Tier: "hsk4"},
		{ID: "hsk4_021", PrimaryForm: "表格", Reading: "biǎogé", Meaning: "Formulir", Tier: "hsk4"},
		{ID: "hsk4_022", PrimaryForm: "表扬", Reading: "biǎoyáng", Meaning: "Memuji", Tier: "hsk4"},
		{ID: "hsk4_023", PrimaryForm: "饼干", Reading: "bǐnggān", Meaning: "Biskuit", Tier: "hsk4"},
		{ID: "hsk4_024", PrimaryForm: "并且", Reading: "bìngqiě", Meaning: "Dan juga", Tier: "hsk4"},
		{ID: "hsk4_025", PrimaryForm: "博士", Reading: "bóshì", Meaning: "Doktor", Tier: "hsk4"},
		{ID: "hsk4_026", PrimaryForm: "不得不", Reading: "bùdébù", Meaning: "Terpaksa", Tier: "hsk4"},
		{ID: "hsk4_027", PrimaryForm: "不管", Reading: "bùguǎn", Meaning: "Tidak peduli", Tier: "hsk4"},
		{ID: "hsk4_028", PrimaryForm: "不过", Reading: "búguò", Meaning: "Tetapi", Tier: "hsk4"},
		{ID: "hsk4_029", PrimaryForm: "不仅", Reading: "bùjǐn", Meaning: "Tidak hanya", Tier: "hsk4"},
		{ID: "hsk4_030", PrimaryForm: "部分", Reading: "bùfen", Meaning: "Bagian", Tier: "hsk4"},
		{ID: "hsk5_001", PrimaryForm: "挨", Reading: "āi", Meaning: "Dekat/Menderita", Tier: "hsk5"},
		{ID: "hsk5_002", PrimaryForm: "爱护", Reading: "àihù", Meaning: "Menyayangi", Tier: "hsk5"},
		{ID: "hsk5_003", PrimaryForm: "爱惜", Reading: "àixī", Meaning: "Menghargai", Tier: "hsk5"},
		{ID: "hsk5_004", PrimaryForm: "爱心", Reading: "àixīn", Meaning: "Kasih sayang", Tier: "hsk5"},
		{ID: "hsk5_005", PrimaryForm: "安慰", Reading: "ānwèi", Meaning: "Menghibur", Tier: "hsk5"},
		{ID: "hsk5_006", PrimaryForm: "安装", Reading: "ānzhuāng", Meaning: "Memasang", Tier: "hsk5"},
		{ID: "hsk5_007", PrimaryForm: "岸", Reading: "àn", Meaning: "Pantai/Tepi", Tier: "hsk5"},
		{ID: "hsk5_008", PrimaryForm: "暗", Reading: "àn", Meaning: "Gelap", Tier: "hsk5"},
		{ID: "hsk5_009", PrimaryForm: "熬夜", Reading: "áoyè", Meaning: "Begadang", Tier: "hsk5"},
		{ID: "hsk5_010", PrimaryForm: "把握", Reading: "bǎwò", Meaning: "Menguasai", Tier: "hsk5"},
		{ID: "hsk5_011", PrimaryForm: "摆", Reading: "bǎi", Meaning: "Meletakkan", Tier: "hsk5"},
		{ID: "hsk5_012", PrimaryForm: "办理", Reading: "bànlǐ", Meaning: "Mengurus", Tier: "hsk5"},
		{ID: "hsk5_013", PrimaryForm: "傍晚", Reading: "bàngwǎn", Meaning: "Senja", Tier: "hsk5"},
		{ID: "hsk5_014", PrimaryForm: "包裹", Reading: "bāoguǒ", Meaning: "Paket", Tier: "hsk5"},
		{ID: "hsk5_015", PrimaryForm: "包含", Reading: "bāohán", Meaning: "Mengandung", Tier: "hsk5"},
		{ID: "hsk5_016", PrimaryForm: "薄", Reading: "báo", Meaning: "Tipis", Tier: "hsk5"},
		{ID: "hsk5_017", PrimaryForm: "宝贝", Reading: "bǎobèi", Meaning: "Sayang", Tier: "hsk5"},
		{ID: "hsk5_018", PrimaryForm: "宝贵", Reading: "bǎoguì", Meaning: "Berharga", Tier: "hsk5"},
		{ID: "hsk5_019", PrimaryForm: "保持", Reading: "bǎochí", Meaning: "Menjaga", Tier: "hsk5"},
		{ID: "hsk5_020", PrimaryForm: "保存", Reading: "bǎocún", Meaning: "Menyimpan", Tier: "hsk5"},
		{ID: "hsk5_021", PrimaryForm: "保留", Reading: "bǎoliú", Meaning: "Mempertahankan", Tier: "hsk5"},
		{ID: "hsk5_022", PrimaryForm: "保险", Reading: "bǎoxiǎn", Meaning: "Asuransi", Tier: "hsk5"},
		{ID: "hsk5_023", PrimaryForm: "报道", Reading: "bàodào", Meaning: "Melaporkan", Tier: "hsk5"},
		{ID: "hsk5_024", PrimaryForm: "报告", Reading: "bàogào", Meaning: "Laporan", Tier: "hsk5"},
		{ID: "hsk5_025", PrimaryForm: "报社", Reading: "bàoshè", Meaning: "Kantor berita", Tier: "hsk5"},
		{ID: "hsk5_026", PrimaryForm: "抱怨", Reading: "bàoyuàn", Meaning: "Mengeluh", Tier: "hsk5"},
		{ID: "hsk5_027", PrimaryForm: "悲观", Reading: "bēiguān", Meaning: "Pesimis", Tier: "hsk5"},
		{ID: "hsk5_028", PrimaryForm: "背", Reading: "bèi", Meaning: "Punggung/Hafal", Tier: "hsk5"},
		{ID: "hsk5_029", PrimaryForm: "背景", Reading: "bèijǐng", Meaning: "Latar belakang", Tier: "hsk5"},
		{ID: "hsk5_030", PrimaryForm: "被子", Reading: "bèizi", Meaning: "Selimut", Tier: "hsk5"},
	},
})
