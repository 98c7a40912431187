// Package genre resolves ID3v1 genre byte values, including the Winamp
// extension, and parses the TCON "(NN)Refinement" convention ID3v2 text
// frames use to reference that same table.
package genre

import (
	"strconv"
	"strings"
)

// Table is the ID3v1 genre list indexed by its byte value. Entries 0-79 are
// the original ID3v1 spec; 80-191 are the de-facto Winamp extension that
// most ID3v2.3 TCON frames of the form "(NN)" still reference.
var Table = []string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel",
	"Noise", "AlternRock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic",
	"Darkwave", "Techno-Industrial", "Electronic", "Pop-Folk", "Eurodance",
	"Dream", "Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40",
	"Christian Rap", "Pop/Funk", "Jungle", "Native American", "Cabaret",
	"New Wave", "Psychadelic", "Rave", "Showtunes", "Trailer", "Lo-Fi",
	"Tribal", "Acid Punk", "Acid Jazz", "Polka", "Retro", "Musical",
	"Rock & Roll", "Hard Rock",
	// Winamp extension (80-191).
	"Folk", "Folk-Rock", "National Folk", "Swing", "Fast Fusion", "Bebob",
	"Latin", "Revival", "Celtic", "Bluegrass", "Avantgarde", "Gothic Rock",
	"Progressive Rock", "Psychedelic Rock", "Symphonic Rock", "Slow Rock",
	"Big Band", "Chorus", "Easy Listening", "Acoustic", "Humour", "Speech",
	"Chanson", "Opera", "Chamber Music", "Sonata", "Symphony", "Booty Bass",
	"Primus", "Porn Groove", "Satire", "Slow Jam", "Club", "Tango", "Samba",
	"Folklore", "Ballad", "Power Ballad", "Rhythmic Soul", "Freestyle",
	"Duet", "Punk Rock", "Drum Solo", "A Cappella", "Euro-House", "Dance Hall",
	"Goa", "Drum & Bass", "Club-House", "Hardcore", "Terror", "Indie",
	"BritPop", "Afro-Punk", "Polsk Punk", "Beat", "Christian Gangsta Rap",
	"Heavy Metal", "Black Metal", "Crossover", "Contemporary Christian",
	"Christian Rock", "Merengue", "Salsa", "Thrash Metal", "Anime", "JPop",
	"Synthpop", "Abstract", "Art Rock", "Baroque", "Bhangra", "Big Beat",
	"Breakbeat", "Chillout", "Downtempo", "Dub", "EBM", "Eclectic",
	"Electro", "Electroclash", "Emo", "Experimental", "Garage", "Global",
	"IDM", "Illbient", "Industro-Goth", "Jam Band", "Krautrock",
	"Leftfield", "Lounge", "Math Rock", "New Romantic", "Nu-Breakz",
	"Post-Punk", "Post-Rock", "Psytrance", "Shoegaze", "Space Rock",
	"Trop Rock", "World Music", "Neoclassical", "Audiobook", "Audio Theatre",
	"Neue Deutsche Welle", "Podcast", "Indie Rock", "G-Funk", "Dubstep",
	"Garage Rock", "Psybient",
}

// Name returns Table[b], or "" if b is outside the known range.
func Name(b byte) string {
	if int(b) < len(Table) {
		return Table[b]
	}
	return ""
}

// Reference is a parsed TCON value: Index is the genre table entry it
// points at (-1 if the value wasn't a "(NN)"-style reference at all), and
// Refinement is any free text that followed the parenthesised number.
type Reference struct {
	Index      int
	Refinement string
}

// Name returns r.Refinement when it is non-empty or when r.Index names no
// Table entry; otherwise it returns the Table entry r.Index points at.
func (r Reference) Name() string {
	if r.Index < 0 || r.Index >= len(Table) {
		return r.Refinement
	}
	name := Name(byte(r.Index))
	if name == "" {
		return r.Refinement
	}
	if r.Refinement != "" {
		return r.Refinement
	}
	return name
}

// ParseTCON parses the ID3v2.3 TCON convention: a genre may be a plain
// string, a "(NN)" reference into Table, or "(NN)Refinement" combining
// both. A literal "((" at the start escapes into a literal "(".
func ParseTCON(value string) Reference {
	if strings.HasPrefix(value, "((") {
		return Reference{Index: -1, Refinement: value[1:]}
	}
	if !strings.HasPrefix(value, "(") {
		return Reference{Index: -1, Refinement: value}
	}
	close := strings.IndexByte(value, ')')
	if close < 0 {
		return Reference{Index: -1, Refinement: value}
	}
	n, err := strconv.Atoi(value[1:close])
	if err != nil {
		return Reference{Index: -1, Refinement: value}
	}
	return Reference{Index: n, Refinement: value[close+1:]}
}
