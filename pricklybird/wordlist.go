package pricklybird

// wordlist maps every byte value to its word. The (first, last)
// letter pair of each word is unique, which makes wordHash a
// perfect hash over the list.
var wordlist = [256]string{
	"acid", "acre", "aims", "ajar", "akin", "also", "anew", "ankh",
	"apex", "aqua", "babe", "baby", "back", "bail", "bait", "bald",
	"balm", "barn", "blob", "blur", "boss", "both", "brag", "brew",
	"bump", "buzz", "cafe", "calf", "calm", "camp", "card", "cart",
	"cash", "cask", "cell", "chin", "dame", "damp", "dark", "dart",
	"dash", "data", "dawn", "days", "deal", "each", "earl", "earn",
	"ease", "east", "easy", "echo", "eggs", "epic", "ever", "exam",
	"face", "fact", "fair", "fang", "farm", "fawn", "feed", "figs",
	"fish", "fizz", "flea", "flux", "folk", "foxy", "full", "gain",
	"gala", "gale", "gang", "gasp", "gear", "gems", "gift", "girl",
	"glad", "glow", "glum", "golf", "grab", "hail", "hair", "half",
	"halo", "halt", "hand", "hang", "harm", "harp", "hash", "husk",
	"ibex", "iced", "icon", "idea", "idle", "idol", "inch", "inky",
	"jade", "jail", "jamb", "jazz", "jeep", "jest", "jets", "join",
	"kale", "keel", "keen", "keep", "kept", "keys", "kick", "kind",
	"king", "kiwi", "knob", "know", "lace", "lack", "lady", "laid",
	"lamb", "lamp", "lash", "last", "lava", "lawn", "mace", "maid",
	"mail", "main", "malt", "many", "maps", "mark", "mash", "memo",
	"meta", "moor", "nail", "name", "navy", "near", "neat", "neck",
	"need", "news", "noon", "oath", "oats", "obey", "oboe", "omen",
	"omit", "onyx", "opal", "orca", "pace", "pack", "paid", "pail",
	"pain", "pair", "palm", "pass", "path", "port", "pray", "prop",
	"puff", "puma", "quad", "quay", "quip", "quit", "quiz", "race",
	"raid", "rail", "rain", "ramp", "rang", "risk", "rust", "safe",
	"saga", "sail", "sand", "sang", "sash", "scan", "scar", "seam",
	"seat", "seek", "self", "ship", "show", "slab", "solo", "taco",
	"tail", "take", "talk", "taxi", "team", "tear", "tend", "tent",
	"than", "thaw", "tiny", "tomb", "tops", "trap", "turf", "twig",
	"ugly", "undo", "unit", "upon", "urge", "vain", "vale", "vary",
	"vast", "veil", "void", "vows", "wade", "wail", "wait", "warn",
	"wash", "wasp", "wavy", "weak", "wear", "webs", "weed", "whiz",
	"yank", "yard", "yarn", "year", "yell", "yoga", "zero", "zone",
}

// hashTable maps wordHash of a word back to its byte value. Slots
// that no word hashes to are zero and are rejected by the exact
// comparison in WordToByte.
var hashTable [1 << 10]byte

func init() {
	for i, w := range wordlist {
		hashTable[wordHash(w[0], w[3])] = byte(i)
	}
}

// wordHash combines the low five bits of the first and last letter of a
// word. Any pair of bytes hashes into hashTable.
func wordHash(first, last byte) int {
	return int(first&0x1f)<<5 | int(last&0x1f)
}
