package taxonomy

// Source names used as keys in the per-locale parameter maps. The sources
// package registers adapters under the same names.
const (
	SourcePixabay   = "pixabay"
	SourcePexels    = "pexels"
	SourceUnsplash  = "unsplash"
	SourceWikimedia = "wikimedia"
)

func params(pixabay, pexels string) map[string]string {
	return map[string]string{SourcePixabay: pixabay, SourcePexels: pexels}
}

var locales = []Locale{
	{Code: "ja_JP", Name: "Japanese", Params: params("ja", "ja")},
	{Code: "ko_KR", Name: "Korean", Params: params("ko", "ko")},
	{Code: "fr_FR", Name: "French", Params: params("fr", "fr")},
	{Code: "de_DE", Name: "German", Params: params("de", "de")},
	{Code: "ar_AE", Name: "Arabic (UAE)", Params: params("ar", "ar")},
	{Code: "ar_EG", Name: "Arabic (Egypt)", Params: params("ar", "ar")},
	{Code: "ar_SA", Name: "Arabic (Saudi)", Params: params("ar", "ar")},
	{Code: "da_DK", Name: "Danish", Params: params("da", "da")},
	{Code: "de_AT", Name: "German (Austria)", Params: params("de", "de")},
	{Code: "de_CH", Name: "German (Switzerland)", Params: params("de", "de")},
	{Code: "es_CL", Name: "Spanish (Chile)", Params: params("es", "es")},
	{Code: "es_ES", Name: "Spanish (Spain)", Params: params("es", "es")},
	{Code: "es_MX", Name: "Spanish (Mexico)", Params: params("es", "es")},
	{Code: "es_US", Name: "Spanish (US)", Params: params("es", "es")},
	{Code: "fi_FI", Name: "Finnish", Params: params("fi", "fi")},
	{Code: "fr_BE", Name: "French (Belgium)", Params: params("fr", "fr")},
	{Code: "fr_CA", Name: "French (Canada)", Params: params("fr", "fr")},
	{Code: "fr_CH", Name: "French (Switzerland)", Params: params("fr", "fr")},
	{Code: "he_IL", Name: "Hebrew", Params: params("", "")},
	{Code: "hi_IN", Name: "Hindi", Params: params("", "")},
	{Code: "id_ID", Name: "Indonesian", Params: params("", "id")},
	{Code: "it_CH", Name: "Italian (Switzerland)", Params: params("it", "it")},
	{Code: "it_IT", Name: "Italian (Italy)", Params: params("it", "it")},
	{Code: "ms_MY", Name: "Malay", Params: params("", "")},
	{Code: "nl_BE", Name: "Dutch (Belgium)", Params: params("nl", "nl")},
	{Code: "nl_NL", Name: "Dutch (Netherlands)", Params: params("nl", "nl")},
	{Code: "no_NO", Name: "Norwegian", Params: params("no", "no")},
	{Code: "pl_PL", Name: "Polish", Params: params("pl", "pl")},
	{Code: "pt_BR", Name: "Portuguese (Brazil)", Params: params("pt", "pt")},
	{Code: "pt_PT", Name: "Portuguese (Portugal)", Params: params("pt", "pt")},
	{Code: "ru_RU", Name: "Russian", Params: params("ru", "ru")},
	{Code: "sv_SE", Name: "Swedish", Params: params("sv", "sv")},
	{Code: "th_TH", Name: "Thai", Params: params("th", "th")},
	{Code: "tr_TR", Name: "Turkish", Params: params("tr", "tr")},
	{Code: "uk_UA", Name: "Ukrainian", Params: params("", "")},
	{Code: "vi_VN", Name: "Vietnamese", Params: params("vi", "vi")},
	{Code: "zh_CN", Name: "Chinese (Simplified)", Params: params("zh", "zh")},
	{Code: "zh_HK", Name: "Chinese (Hong Kong)", Params: params("zh", "zh")},
	{Code: "zh_TW", Name: "Chinese (Traditional)", Params: params("zh", "zh")},
}

var categories = []Category{
	{
		Key:  "arts_illustrations",
		Name: "Arts and Illustrations",
		Keywords: map[string][]string{
			"en": {"art", "painting", "drawing", "illustration", "sketch", "artwork", "design", "creative"},
			"es": {"arte", "pintura", "dibujo", "ilustración", "diseño", "creativo"},
			"fr": {"art", "peinture", "dessin", "illustration", "conception", "créatif"},
			"de": {"kunst", "malerei", "zeichnung", "illustration", "design", "kreativ"},
			"zh": {"艺术", "绘画", "插图", "设计", "创意"},
			"ja": {"アート", "絵画", "イラスト", "デザイン", "創造"},
			"ar": {"فن", "رسم", "توضيح", "تصميم", "إبداع"},
			"ru": {"искусство", "живопись", "рисование", "иллюстрация", "дизайн"},
			"ko": {"예술", "그림", "일러스트", "디자인", "창작"},
		},
	},
	{
		Key:  "daily_objects",
		Name: "Daily Objects",
		Keywords: map[string][]string{
			"en": {"objects", "items", "tools", "household", "everyday", "things", "products"},
			"es": {"objetos", "artículos", "herramientas", "hogar", "cotidiano", "productos"},
			"fr": {"objets", "articles", "outils", "maison", "quotidien", "produits"},
			"de": {"objekte", "gegenstände", "werkzeuge", "haushalt", "alltag", "produkte"},
			"zh": {"物品", "工具", "家居", "日常用品", "产品"},
			"ja": {"オブジェクト", "道具", "家庭用品", "日用品", "製品"},
			"ar": {"أشياء", "أدوات", "منزل", "يومي", "منتجات"},
			"ru": {"предметы", "инструменты", "домашний", "повседневный", "продукты"},
			"ko": {"물건", "도구", "가정용품", "일상용품", "제품"},
		},
	},
	{
		Key:  "documents",
		Name: "Documents",
		Keywords: map[string][]string{
			"en": {"document", "paper", "form", "certificate", "letter", "text", "paperwork"},
			"es": {"documento", "papel", "formulario", "certificado", "carta", "papeleo"},
			"fr": {"document", "papier", "formulaire", "certificat", "lettre", "paperasse"},
			"de": {"dokument", "papier", "formular", "zertifikat", "brief", "unterlagen"},
			"zh": {"文档", "文件", "证书", "信件", "表格"},
			"ja": {"文書", "書類", "証明書", "手紙", "フォーム"},
			"ar": {"وثيقة", "ورقة", "شهادة", "رسالة", "استمارة"},
			"ru": {"документ", "бумага", "сертификат", "письмо", "форма"},
			"ko": {"문서", "서류", "증명서", "편지", "양식"},
		},
	},
	{
		Key:  "faces_people",
		Name: "Faces and People",
		Keywords: map[string][]string{
			"en": {"people", "person", "face", "portrait", "human", "family", "group"},
			"es": {"personas", "persona", "cara", "retrato", "humano", "familia", "grupo"},
			"fr": {"personnes", "personne", "visage", "portrait", "humain", "famille", "groupe"},
			"de": {"menschen", "person", "gesicht", "porträt", "mensch", "familie", "gruppe"},
			"zh": {"人", "面孔", "肖像", "家庭", "群体"},
			"ja": {"人", "顔", "肖像", "家族", "グループ"},
			"ar": {"أشخاص", "وجه", "صورة", "عائلة", "مجموعة"},
			"ru": {"люди", "человек", "лицо", "портрет", "семья", "группа"},
			"ko": {"사람", "얼굴", "초상화", "가족", "그룹"},
		},
	},
	{
		Key:  "handwritten_notes",
		Name: "Handwritten Notes",
		Keywords: map[string][]string{
			"en": {"handwriting", "notes", "handwritten", "writing", "manuscript", "notebook"},
			"es": {"escritura a mano", "notas", "manuscrito", "cuaderno"},
			"fr": {"écriture manuscrite", "notes", "manuscrit", "carnet"},
			"de": {"handschrift", "notizen", "handgeschrieben", "manuskript", "notizbuch"},
			"zh": {"手写", "笔记", "手稿", "笔记本"},
			"ja": {"手書き", "ノート", "手稿", "ノートブック"},
			"ar": {"خط اليد", "ملاحظات", "مخطوطة", "دفتر"},
			"ru": {"почерк", "заметки", "рукопись", "блокнот"},
			"ko": {"손글씨", "노트", "수고", "공책"},
		},
	},
	{
		Key:  "indoor_environments",
		Name: "Indoor Environments",
		Keywords: map[string][]string{
			"en": {"indoor", "interior", "room", "office", "home", "building", "inside"},
			"es": {"interior", "habitación", "oficina", "casa", "edificio", "dentro"},
			"fr": {"intérieur", "chambre", "bureau", "maison", "bâtiment", "dedans"},
			"de": {"innen", "zimmer", "büro", "haus", "gebäude", "drinnen"},
			"zh": {"室内", "房间", "办公室", "家", "建筑"},
			"ja": {"室内", "部屋", "オフィス", "家", "建物"},
			"ar": {"داخلي", "غرفة", "مكتب", "منزل", "مبنى"},
			"ru": {"интерьер", "комната", "офис", "дом", "здание"},
			"ko": {"실내", "방", "사무실", "집", "건물"},
		},
	},
	{
		Key:  "places_landscapes",
		Name: "Places and Landscapes",
		Keywords: map[string][]string{
			"en": {"landscape", "nature", "outdoor", "scenery", "place", "location", "view"},
			"es": {"paisaje", "naturaleza", "exterior", "escenario", "lugar", "ubicación"},
			"fr": {"paysage", "nature", "extérieur", "paysage", "lieu", "emplacement"},
			"de": {"landschaft", "natur", "draußen", "szenerie", "ort", "standort"},
			"zh": {"风景", "自然", "户外", "景色", "地点"},
			"ja": {"風景", "自然", "屋外", "景色", "場所"},
			"ar": {"منظر طبيعي", "طبيعة", "خارجي", "مكان", "موقع"},
			"ru": {"пейзаж", "природа", "на улице", "место", "локация"},
			"ko": {"풍경", "자연", "야외", "경치", "장소"},
		},
	},
	{
		Key:  "scene_texts",
		Name: "Scene Texts",
		Keywords: map[string][]string{
			"en": {"sign", "text", "writing", "words", "billboard", "street", "signage"},
			"es": {"señal", "texto", "escritura", "palabras", "cartelera", "señalización"},
			"fr": {"signe", "texte", "écriture", "mots", "panneau", "signalisation"},
			"de": {"schild", "text", "schrift", "wörter", "billboard", "beschilderung"},
			"zh": {"标志", "文字", "街道标识", "广告牌"},
			"ja": {"看板", "テキスト", "文字", "標識", "掲示板"},
			"ar": {"علامة", "نص", "كتابة", "لافتة", "إشارة"},
			"ru": {"знак", "текст", "надпись", "вывеска", "указатель"},
			"ko": {"표지판", "텍스트", "문자", "간판", "표시"},
		},
	},
	{
		Key:  "animals",
		Name: "Animals",
		Keywords: map[string][]string{
			"en": {"animals", "pets", "wildlife", "cat", "dog", "bird", "nature"},
			"es": {"animales", "mascotas", "vida silvestre", "gato", "perro", "pájaro"},
			"fr": {"animaux", "animaux de compagnie", "faune", "chat", "chien", "oiseau"},
			"de": {"tiere", "haustiere", "wildtiere", "katze", "hund", "vogel"},
			"zh": {"动物", "宠物", "野生动物", "猫", "狗", "鸟"},
			"ja": {"動物", "ペット", "野生動物", "猫", "犬", "鳥"},
			"ar": {"حيوانات", "حيوانات أليفة", "حياة برية", "قطة", "كلب", "طائر"},
			"ru": {"животные", "домашние животные", "дикая природа", "кот", "собака", "птица"},
			"ko": {"동물", "애완동물", "야생동물", "고양이", "개", "새"},
		},
	},
	{
		Key:  "foods",
		Name: "Foods",
		Keywords: map[string][]string{
			"en": {"food", "meal", "cooking", "dish", "recipe", "cuisine", "eating"},
			"es": {"comida", "comida", "cocina", "plato", "receta", "cocina"},
			"fr": {"nourriture", "repas", "cuisine", "plat", "recette", "gastronomie"},
			"de": {"essen", "mahlzeit", "kochen", "gericht", "rezept", "küche"},
			"zh": {"食物", "餐", "烹饪", "菜肴", "食谱"},
			"ja": {"食べ物", "食事", "料理", "皿", "レシピ"},
			"ar": {"طعام", "وجبة", "طبخ", "طبق", "وصفة"},
			"ru": {"еда", "еда", "приготовление", "блюдо", "рецепт"},
			"ko": {"음식", "식사", "요리", "요리", "레시피"},
		},
	},
	{
		Key:  "screenshots",
		Name: "Screenshots",
		Keywords: map[string][]string{
			"en": {"screenshot", "screen", "computer", "software", "app", "interface", "digital"},
			"es": {"captura de pantalla", "pantalla", "computadora", "software", "aplicación"},
			"fr": {"capture d'écran", "écran", "ordinateur", "logiciel", "application"},
			"de": {"bildschirmfoto", "bildschirm", "computer", "software", "anwendung"},
			"zh": {"截图", "屏幕", "计算机", "软件", "应用程序"},
			"ja": {"スクリーンショット", "画面", "コンピュータ", "ソフトウェア", "アプリ"},
			"ar": {"لقطة شاشة", "شاشة", "حاسوب", "برنامج", "تطبيق"},
			"ru": {"скриншот", "экран", "компьютер", "программа", "приложение"},
			"ko": {"스크린샷", "화면", "컴퓨터", "소프트웨어", "앱"},
		},
	},
	{
		Key:  "graphs_charts",
		Name: "Graphs and Charts",
		Keywords: map[string][]string{
			"en": {"chart", "graph", "data", "statistics", "diagram", "infographic", "visualization"},
			"es": {"gráfico", "datos", "estadísticas", "diagrama", "infografía"},
			"fr": {"graphique", "données", "statistiques", "diagramme", "infographie"},
			"de": {"diagramm", "daten", "statistiken", "schaubild", "infografik"},
			"zh": {"图表", "数据", "统计", "图解", "信息图"},
			"ja": {"チャート", "データ", "統計", "図表", "インフォグラフィック"},
			"ar": {"مخطط", "بيانات", "إحصائيات", "رسم بياني", "إنفوجرافيك"},
			"ru": {"график", "данные", "статистика", "диаграмма", "инфографика"},
			"ko": {"차트", "데이터", "통계", "다이어그램", "인포그래픽"},
		},
	},
}

// locationTerms bias unfiltered sources toward a locale by appending a
// location word to the search keyword.
var locationTerms = map[string][]string{
	"ja_JP": {"Japan", "Japanese", "Tokyo"},
	"ko_KR": {"Korea", "Korean", "Seoul"},
	"zh_CN": {"China", "Chinese", "Beijing"},
	"zh_HK": {"Hong Kong", "Chinese"},
	"fr_FR": {"France", "French", "Paris"},
	"de_DE": {"Germany", "German", "Berlin"},
	"es_ES": {"Spain", "Spanish", "Madrid"},
	"it_IT": {"Italy", "Italian", "Rome"},
	"ru_RU": {"Russia", "Russian", "Moscow"},
}
