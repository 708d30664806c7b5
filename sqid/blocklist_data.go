package sqid

// DefaultBlocklist returns a copy of the curated word list used when
// Options.Blocklist is nil. Entries are lowercase and use only symbols of the
// default alphabet; leetspeak variants cover the digit substitutions an
// identifier can accidentally spell. Callers may append to the returned slice
// and pass it back through Options to extend rather than replace the list.
func DefaultBlocklist() []string {
	blocklist := make([]string, len(defaultBlocklist))
	copy(blocklist, defaultBlocklist)
	return blocklist
}

var defaultBlocklist = []string{
	"0rgasm",
	"1d10t",
	"1d1ot",
	"1di0t",
	"1diot",
	"1eccacu10",
	"1eccacu1o",
	"1eccacul0",
	"1eccaculo",
	"a11upat0",
	"a11upato",
	"a1lupat0",
	"a1lupato",
	"anal",
	"anus",
	"arse",
	"arsehole",
	"a55",
	"a55h0le",
	"a55hole",
	"ass",
	"asshole",
	"b00b",
	"b00be",
	"b0ob",
	"b0obe",
	"bastard",
	"bitch",
	"bo0b",
	"bo0be",
	"boob",
	"boobe",
	"bollocks",
	"bullshit",
	"butthole",
	"cabron",
	"cawk",
	"chink",
	"cipa",
	"clit",
	"cock",
	"connard",
	"connasse",
	"coon",
	"cracker",
	"crap",
	"cum",
	"cunt",
	"d1ck",
	"d1ld0",
	"d1ldo",
	"damn",
	"dick",
	"dild0",
	"dildo",
	"dyke",
	"enculer",
	"f0ck",
	"f4nny",
	"fag",
	"faggot",
	"fanculo",
	"fanny",
	"fick",
	"ficken",
	"fock",
	"foutre",
	"fuck",
	"fucker",
	"fvck",
	"g00",
	"gooch",
	"gook",
	"h0m0",
	"h0mo",
	"hell",
	"hom0",
	"homo",
	"hondenlul",
	"hure",
	"idi0t",
	"idiot",
	"jerk",
	"jizz",
	"kike",
	"klootzak",
	"kraut",
	"kuk",
	"kuksuger",
	"kurac",
	"kurwa",
	"kusi",
	"kyrpa",
	"merd",
	"merda",
	"merde",
	"mierda",
	"milf",
	"muschi",
	"nazi",
	"negr",
	"negre",
	"negro",
	"nigga",
	"nigger",
	"orgasm",
	"paska",
	"pedo",
	"penis",
	"pen1s",
	"perse",
	"phuck",
	"pillu",
	"pimmel",
	"piss",
	"polla",
	"poop",
	"porn",
	"p0rn",
	"pr0n",
	"prick",
	"pussy",
	"puta",
	"putain",
	"pute",
	"puto",
	"queef",
	"rape",
	"retard",
	"s1ut",
	"scheisse",
	"schlampe",
	"schwanz",
	"scrotum",
	"sexy",
	"sh1t",
	"shit",
	"skank",
	"slut",
	"smut",
	"spic",
	"stfu",
	"suka",
	"tard",
	"teta",
	"tits",
	"tittie",
	"titty",
	"turd",
	"twat",
	"vaffanculo",
	"wank",
	"wanker",
	"whore",
	"w00se",
	"xxx",
}
