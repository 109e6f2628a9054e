package vocab

// Built-in filler vocabularies. Multi-word entries ("you know",
// "это самое") stay in the tables for completeness but a word-level
// tokenizer can only ever match the single-token members.
var fillersRU = []string{
	"ну", "типа", "короче", "в общем", "как бы", "значит", "понимаешь", "вроде", "собственно", "это самое",
	"вообще", "ещё", "просто", "например", "я думаю", "знаешь", "ладно", "вот", "так сказать", "сразу",
	"кажется", "так", "эх", "короче говоря", "между прочим", "по сути", "как правило", "в итоге",
	"в принципе", "честно говоря", "на самом деле", "прямо", "ну вот", "кстати", "при этом",
	"если честно", "как ни странно", "пожалуй", "типа того", "так вот", "в общем-то", "сильно", "пожалуйста",
	"эээ", "эмм", "ммм", "ах", "ой", "угу", "ээ…", "эмм…", "мм…", "ах…", "ох", "эх…", "мм-хм", "ааа",
}

var fillersEN = []string{
	"um", "uh", "like", "you know", "basically", "actually", "literally", "sort of", "kind of", "i mean",
	"right", "okay", "well", "so", "anyway", "honestly", "seriously", "obviously", "definitely", "totally",
	"really", "just", "maybe", "perhaps", "probably", "essentially", "practically", "virtually", "generally",
	"apparently", "supposedly", "presumably", "allegedly", "hmm", "err", "ah", "oh", "yeah", "yep", "nah",
}
