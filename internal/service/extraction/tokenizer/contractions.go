package tokenizer

// contractions maps a normalized contraction to the words it stands for.
// Ambiguous 'd and 's forms use the most frequent reading.
var contractions = map[string][]string{
	// n't
	"can't":     {"can", "not"},
	"cannot":    {"can", "not"},
	"won't":     {"will", "not"},
	"shan't":    {"shall", "not"},
	"don't":     {"do", "not"},
	"doesn't":   {"does", "not"},
	"didn't":    {"did", "not"},
	"isn't":     {"is", "not"},
	"aren't":    {"are", "not"},
	"wasn't":    {"was", "not"},
	"weren't":   {"were", "not"},
	"haven't":   {"have", "not"},
	"hasn't":    {"has", "not"},
	"hadn't":    {"had", "not"},
	"couldn't":  {"could", "not"},
	"shouldn't": {"should", "not"},
	"wouldn't":  {"would", "not"},
	"mustn't":   {"must", "not"},
	"needn't":   {"need", "not"},
	"mightn't":  {"might", "not"},
	"ain't":     {"am", "not"},

	// 'm 're 've
	"i'm":       {"i", "am"},
	"you're":    {"you", "are"},
	"we're":     {"we", "are"},
	"they're":   {"they", "are"},
	"who're":    {"who", "are"},
	"i've":      {"i", "have"},
	"you've":    {"you", "have"},
	"we've":     {"we", "have"},
	"they've":   {"they", "have"},
	"could've":  {"could", "have"},
	"would've":  {"would", "have"},
	"should've": {"should", "have"},
	"might've":  {"might", "have"},
	"must've":   {"must", "have"},

	// 'll
	"i'll":    {"i", "will"},
	"you'll":  {"you", "will"},
	"he'll":   {"he", "will"},
	"she'll":  {"she", "will"},
	"it'll":   {"it", "will"},
	"we'll":   {"we", "will"},
	"they'll": {"they", "will"},
	"that'll": {"that", "will"},

	// 'd
	"i'd":    {"i", "would"},
	"you'd":  {"you", "would"},
	"he'd":   {"he", "would"},
	"she'd":  {"she", "would"},
	"we'd":   {"we", "would"},
	"they'd": {"they", "would"},

	// 's as "is" or "us"
	"it's":    {"it", "is"},
	"he's":    {"he", "is"},
	"she's":   {"she", "is"},
	"that's":  {"that", "is"},
	"what's":  {"what", "is"},
	"there's": {"there", "is"},
	"here's":  {"here", "is"},
	"where's": {"where", "is"},
	"who's":   {"who", "is"},
	"how's":   {"how", "is"},
	"let's":   {"let", "us"},

	"y'all": {"you", "all"},
}
