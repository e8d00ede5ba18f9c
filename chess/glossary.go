package chess

// Glossary tables used by the expander and the diagram describer. The
// English tables are the defaults; the Arabic tables reproduce the
// vocabulary of printed Arabic chess literature, where the figurine
// names and move quality phrases follow established usage (طابية for
// rook, تبييت for castling, and so on).

// DefaultAnnotationGlossary maps move quality glyphs to English
// phrases.
func DefaultAnnotationGlossary() map[string]string {
	return map[string]string{
		"!!": "excellent move",
		"!":  "good move",
		"??": "blunder",
		"?":  "weak move",
		"!?": "interesting move",
		"?!": "dubious move",
	}
}

// ArabicAnnotationGlossary maps move quality glyphs to Arabic phrases.
func ArabicAnnotationGlossary() map[string]string {
	return map[string]string{
		"!!": "نقلة ممتازة",
		"!":  "نقلة جيدة",
		"??": "خطأ فادح",
		"?":  "نقلة ضعيفة",
		"!?": "نقلة مثيرة للاهتمام",
		"?!": "نقلة مشكوك فيها",
	}
}

// DefaultNAGGlossary maps numeric annotation glyphs ($1 through $36) to
// English phrases.
func DefaultNAGGlossary() map[string]string {
	return map[string]string{
		"$1":  "strong move",
		"$2":  "weak move",
		"$3":  "excellent move",
		"$4":  "serious blunder",
		"$5":  "questionable move",
		"$6":  "dubious move",
		"$7":  "forced move",
		"$8":  "only move",
		"$9":  "worst move",
		"$10": "drawn position",
		"$11": "balanced position",
		"$12": "complicated position",
		"$13": "unclear position",
		"$14": "slight advantage for White",
		"$15": "slight advantage for Black",
		"$16": "advantage for White",
		"$17": "advantage for Black",
		"$18": "winning position for White",
		"$19": "winning position for Black",
		"$20": "decisive advantage for White",
		"$21": "decisive advantage for Black",
		"$22": "severe pressure",
		"$23": "critical position",
		"$24": "greater flexibility",
		"$25": "lagging development",
		"$26": "initiative",
		"$27": "attack",
		"$28": "compensation for the material",
		"$29": "positional compensation",
		"$30": "attacking line",
		"$31": "defensive line",
		"$32": "pressure on the center",
		"$33": "pressure on the flank",
		"$34": "positional constraints",
		"$35": "developing line",
		"$36": "counterplay line",
	}
}

// ArabicNAGGlossary maps numeric annotation glyphs to Arabic phrases.
func ArabicNAGGlossary() map[string]string {
	return map[string]string{
		"$1":  "نقلة قوية",
		"$2":  "نقلة ضعيفة",
		"$3":  "نقلة ممتازة",
		"$4":  "خطأ فادح",
		"$5":  "نقلة مثيرة للتساؤل",
		"$6":  "نقلة مشكوك فيها",
		"$7":  "نقلة مجبرة",
		"$8":  "النقلة الوحيدة",
		"$9":  "أسوأ نقلة",
		"$10": "موقف متعادل",
		"$11": "موقف متكافئ",
		"$12": "موقف معقد",
		"$13": "موقف غامض",
		"$14": "أفضلية طفيفة للأبيض",
		"$15": "أفضلية طفيفة للأسود",
		"$16": "أفضلية للأبيض",
		"$17": "أفضلية للأسود",
		"$18": "فوز للأبيض",
		"$19": "فوز للأسود",
		"$20": "أفضلية حاسمة للأبيض",
		"$21": "أفضلية حاسمة للأسود",
		"$22": "ضغط شديد",
		"$23": "موقف حرج",
		"$24": "مرونة أكبر",
		"$25": "تنمية متأخرة",
		"$26": "مبادرة",
		"$27": "هجوم",
		"$28": "تعويض عن المادة",
		"$29": "تعويض عن الموقف",
		"$30": "خط هجومي",
		"$31": "خط دفاعي",
		"$32": "ضغط على المركز",
		"$33": "ضغط على الجناح",
		"$34": "قيود موقعية",
		"$35": "خط تطوير",
		"$36": "خط مضاد",
	}
}

// ArabicTermGlossary maps English chess vocabulary to Arabic
// equivalents. The expander substitutes these as whole words when the
// table is installed.
func ArabicTermGlossary() map[string]string {
	return map[string]string{
		"check":                 "كش",
		"mate":                  "مات",
		"stalemate":             "تعادل بالتجميد",
		"castle":                "تبييت",
		"promote":               "ترقية",
		"capture":               "ضرب",
		"en passant":            "أخذ في المرور",
		"pin":                   "تثبيت",
		"fork":                  "شوكة",
		"skewer":                "سفود",
		"discovered attack":     "هجوم مكشوف",
		"double attack":         "هجوم مزدوج",
		"double check":          "كش مزدوج",
		"overloading":           "إرهاق القطعة",
		"deflection":            "إبعاد القطعة",
		"interference":          "تداخل",
		"zwischenzug":           "نقلة بينية",
		"zugzwang":              "إجبار على الحركة",
		"opening":               "افتتاح",
		"development":           "تطوير",
		"center":                "مركز",
		"fianchetto":            "تطوير الفيل",
		"gambit":                "تضحية افتتاحية",
		"counter gambit":        "تضحية مضادة",
		"middlegame":            "وسط اللعبة",
		"initiative":            "مبادرة",
		"attack":                "هجوم",
		"defense":               "دفاع",
		"counterplay":           "لعب مضاد",
		"prophylaxis":           "وقاية",
		"endgame":               "نهاية اللعبة",
		"passing pawn":          "بيدق متقدم",
		"outside passed pawn":   "بيدق متقدم خارجي",
		"protected passed pawn": "بيدق متقدم محمي",
		"connected pawns":       "بيادق متصلة",
		"isolated pawn":         "بيدق معزول",
		"doubled pawns":         "بيادق مضاعفة",
		"backward pawn":         "بيدق متأخر",
		"majority":              "أغلبية بيادق",
		"advantage":             "أفضلية",
		"winning advantage":     "أفضلية حاسمة",
		"slight advantage":      "أفضلية طفيفة",
		"equal":                 "تعادل",
		"unclear":               "موقف غير واضح",
		"compensation":          "تعويض",
	}
}

// ArabicPieceNames maps algebraic piece letters to Arabic piece names.
// Both cases are present because imported game scores sometimes carry
// lowercase piece letters.
func ArabicPieceNames() map[string]string {
	return map[string]string{
		"K": "ملك", "k": "ملك",
		"Q": "وزير", "q": "وزير",
		"R": "طابية", "r": "طابية",
		"B": "فيل", "b": "فيل",
		"N": "حصان", "n": "حصان",
		"P": "بيدق", "p": "بيدق",
	}
}

// ArabicDiagramNames maps figurine piece characters to Arabic names,
// used by DescribeDiagram.
func ArabicDiagramNames() map[rune]string {
	return map[rune]string{
		'♔': "ملك أبيض",
		'♕': "وزير أبيض",
		'♖': "طابية بيضاء",
		'♗': "فيل أبيض",
		'♘': "حصان أبيض",
		'♙': "بيدق أبيض",
		'♚': "ملك أسود",
		'♛': "وزير أسود",
		'♜': "طابية سوداء",
		'♝': "فيل أسود",
		'♞': "حصان أسود",
		'♟': "بيدق أسود",
	}
}
