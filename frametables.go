package id3

// FrameNames maps a canonical four-character identifier to its English
// display name.
var FrameNames = map[FrameType]string{
	"AENC": "Audio encryption",
	"APIC": "Attached picture",
	"ASPI": "Audio seek point index",
	"COMM": "Comments",
	"COMR": "Commercial frame",
	"ENCR": "Encryption method registration",
	"EQU2": "Equalisation (2)",
	"ETCO": "Event timing codes",
	"GEOB": "General encapsulated object",
	"GRID": "Group identification registration",
	"IPLS": "Involved people list",
	"LINK": "Linked information",
	"MCDI": "Music CD identifier",
	"MLLT": "MPEG location lookup table",
	"OWNE": "Ownership frame",
	"PRIV": "Private frame",
	"PCNT": "Play counter",
	"POPM": "Popularimeter",
	"POSS": "Position synchronisation frame",
	"RBUF": "Recommended buffer size",
	"RVA2": "Relative volume adjustment (2)",
	"RVRB": "Reverb",
	"SEEK": "Seek frame",
	"SIGN": "Signature frame",
	"SYLT": "Synchronised lyric/text",
	"SYTC": "Synchronised tempo codes",
	"TALB": "Album/Movie/Show title",
	"TBPM": "BPM (beats per minute)",
	"TCOM": "Composer",
	"TCON": "Content type",
	"TCOP": "Copyright message",
	"TDEN": "Encoding time",
	"TDLY": "Playlist delay",
	"TDOR": "Original release time",
	"TDRC": "Recording time",
	"TDRL": "Release time",
	"TDTG": "Tagging time",
	"TENC": "Encoded by",
	"TEXT": "Lyricist/Text writer",
	"TFLT": "File type",
	"TIPL": "Involved people list",
	"TIT1": "Content group description",
	"TIT2": "Title/songname/content description",
	"TIT3": "Subtitle/Description refinement",
	"TKEY": "Initial key",
	"TLAN": "Language(s)",
	"TLEN": "Length",
	"TMCL": "Musician credits list",
	"TMED": "Media type",
	"TMOO": "Mood",
	"TOAL": "Original album/movie/show title",
	"TOFN": "Original filename",
	"TOLY": "Original lyricist(s)/text writer(s)",
	"TORY": "Original release year",
	"TOPE": "Original artist(s)/performer(s)",
	"TOWN": "File owner/licensee",
	"TPE1": "Lead performer(s)/Soloist(s)",
	"TPE2": "Band/orchestra/accompaniment",
	"TPE3": "Conductor/performer refinement",
	"TPE4": "Interpreted, remixed, or otherwise modified by",
	"TPOS": "Part of a set",
	"TPRO": "Produced notice",
	"TPUB": "Publisher",
	"TRCK": "Track number/Position in set",
	"TRDA": "Recording dates",
	"TRSN": "Internet radio station name",
	"TRSO": "Internet radio station owner",
	"TSOA": "Album sort order",
	"TSOP": "Performer sort order",
	"TSOT": "Title sort order",
	"TSO2": "Album Artist sort order",
	"TSOC": "Composer sort order",
	"TSRC": "ISRC (international standard recording code)",
	"TSSE": "Software/Hardware and settings used for encoding",
	"TSST": "Set subtitle",
	"TYER": "Year",
	"TDAT": "Date",
	"TIME": "Time",
	"TSIZ": "Size",
	"TXXX": "User defined text information frame",
	"UFID": "Unique file identifier",
	"USER": "Terms of use",
	"USLT": "Unsynchronised lyric/text transcription",
	"WCOM": "Commercial information",
	"WCOP": "Copyright/Legal information",
	"WOAF": "Official audio file webpage",
	"WOAR": "Official artist/performer webpage",
	"WOAS": "Official audio source webpage",
	"WORS": "Official Internet radio station homepage",
	"WPAY": "Payment",
	"WPUB": "Publishers official webpage",
	"WXXX": "User defined URL link frame",
}

var PictureTypes = []string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

// canonicalKinds maps the four-character v2.3/v2.4 identifier (and the
// three-character v2.2 identifiers it upgrades to) to its CanonicalFrameKind,
// so callers can look up "the genre frame" without caring which version the
// tag is in.
var canonicalKinds = map[FrameType]CanonicalFrameKind{
	"TIT2": KindTitle,
	"TT2":  KindTitle,
	"TPE1": KindArtist,
	"TP1":  KindArtist,
	"TPE2": KindAlbumArtist,
	"TP2":  KindAlbumArtist,
	"TALB": KindAlbum,
	"TAL":  KindAlbum,
	"TCOM": KindComposer,
	"TCM":  KindComposer,
	"TCON": KindGenre,
	"TCO":  KindGenre,
	"TYER": KindYear,
	"TYE":  KindYear,
	"TDRC": KindRecordingTime,
	"TDRL": KindReleaseTime,
	"TRCK": KindTrackNumber,
	"TRK":  KindTrackNumber,
	"TPOS": KindPartOfSet,
	"TPA":  KindPartOfSet,
	"COMM": KindComment,
	"COM":  KindComment,
	"USLT": KindUnsynchronisedLyrics,
	"ULT":  KindUnsynchronisedLyrics,
	"APIC": KindPicture,
	"PIC":  KindPicture,
	"TXXX": KindUserText,
	"TXX":  KindUserText,
	"WXXX": KindUserURL,
	"WXX":  KindUserURL,
	"UFID": KindUniqueFileIdentifier,
	"UFI":  KindUniqueFileIdentifier,
	"MCDI": KindMusicCDIdentifier,
	"MCI":  KindMusicCDIdentifier,
	"PRIV": KindPrivate,
	"PCNT": KindPlayCounter,
	"CNT":  KindPlayCounter,
	"POPM": KindPopularimeter,
	"POP":  KindPopularimeter,
	"TENC": KindEncodedBy,
	"TEN":  KindEncodedBy,
	"TLEN": KindLength,
	"TLE":  KindLength,
	"TPUB": KindPublisher,
	"TPB":  KindPublisher,
	"TCOP": KindCopyright,
	"TCR":  KindCopyright,
	"TLAN": KindLanguage,
	"TLA":  KindLanguage,
	"IPLS": KindInvolvedPeopleList,
	"IPL":  KindInvolvedPeopleList,
	"TIPL": KindInvolvedPeopleList,
	"TMCL": KindInvolvedPeopleList,
}

func canonicalKindOf(id FrameType) CanonicalFrameKind {
	if k, ok := canonicalKinds[id]; ok {
		return k
	}
	switch id[0] {
	case 'T':
		return KindOther
	case 'W':
		return KindURLLink
	default:
		return KindOther
	}
}

// frameTableV2r0 maps every three-character ID3v2.2 identifier this package
// recognises to its four-character ID3v2.3/2.4 spelling, so the v2.2
// decoder can hand the rest of the pipeline a version-independent id.
var frameTableV2r0 = map[FrameType]FrameType{
	"UFI": "UFID",
	"TT1": "TIT1", "TT2": "TIT2", "TT3": "TIT3",
	"TP1": "TPE1", "TP2": "TPE2", "TP3": "TPE3", "TP4": "TPE4",
	"TCM": "TCOM", "TXT": "TEXT", "TLA": "TLAN", "TCO": "TCON",
	"TAL": "TALB", "TPA": "TPOS", "TRK": "TRCK", "TRC": "TSRC",
	"TYE": "TYER", "TDA": "TDAT", "TIM": "TIME", "TRD": "TRDA",
	"TMT": "TMED", "TFT": "TFLT", "TBP": "TBPM", "TCR": "TCOP",
	"TPB": "TPUB", "TEN": "TENC", "TSS": "TSSE", "TOF": "TOFN",
	"TLE": "TLEN", "TSI": "TSIZ", "TDY": "TDLY", "TKE": "TKEY",
	"TOT": "TOAL", "TOA": "TOPE", "TOL": "TOLY", "TOR": "TORY",
	"TXX": "TXXX",
	"WAF": "WOAF", "WAR": "WOAR", "WAS": "WOAS", "WCM": "WCOM",
	"WCP": "WCOP", "WPB": "WPUB", "WXX": "WXXX",
	"IPL": "IPLS",
	"MCI": "MCDI",
	"PIC": "APIC",
	"POP": "POPM",
	"CNT": "PCNT",
	"COM": "COMM",
	"ULT": "USLT",
}

// discardOnFileAlterV2r3 lists identifiers the ID3v2.3 spec requires be
// discarded whenever the audio file is altered, regardless of the frame's
// own file-alter-preservation bit: values derived from the audio itself
// cannot survive a file edit.
var discardOnFileAlterV2r3 = map[FrameType]bool{
	"AENC": true, "ETCO": true, "EQUA": true, "MLLT": true, "POSS": true,
	"SYLT": true, "SYTC": true, "RVAD": true, "TENC": true, "TLEN": true, "TSIZ": true,
}

// discardOnFileAlterV2r4 is the ID3v2.4 equivalent of discardOnFileAlterV2r3.
var discardOnFileAlterV2r4 = map[FrameType]bool{
	"ASPI": true, "AENC": true, "ETCO": true, "EQU2": true, "MLLT": true, "POSS": true,
	"SEEK": true, "SYLT": true, "SYTC": true, "RVA2": true, "TENC": true, "TLEN": true,
}
