package cuesheet

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// lineOfInput pairs one line of raw input with its 1-based line number,
// mirroring cuelib's LineOfInput.
type lineOfInput struct {
	number int
	text   string
}

// parser holds the mutable state threaded through a single Parse call: the
// sheet being built, the FileData/TrackData the next command applies to,
// and the warnings accumulated so far.
type parser struct {
	sheet        *CueSheet
	currentFile  *FileData
	currentTrack *TrackData
	warnings     []Warning
}

// Parse reads a cue sheet from r, returning the parsed CueSheet along with
// any non-fatal warnings encountered (unrecognised commands, malformed
// positions, commands issued before their required context exists). Parse
// itself only fails on an underlying I/O error; malformed cue syntax is
// always reported as a Warning, never as an error, matching cuelib's
// CueParser.parse behavior of returning a best-effort CueSheet plus a list
// of messages.
func Parse(r io.Reader) (*CueSheet, []Warning, error) {
	p := &parser{sheet: &CueSheet{Year: -1, TotalDiscs: -1, DiscNumber: -1}}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := lineOfInput{number: lineNumber, text: scanner.Text()}
		p.dispatch(line)
	}
	if err := scanner.Err(); err != nil {
		return p.sheet, p.warnings, err
	}
	return p.sheet, p.warnings, nil
}

func (p *parser) warn(line lineOfInput, message string) {
	p.warnings = append(p.warnings, Warning{
		Severity:   SeverityWarning,
		LineNumber: line.number,
		Line:       line.text,
		Message:    message,
	})
}

func (p *parser) dispatch(line lineOfInput) {
	fields := tokenize(line.text)
	if len(fields) == 0 {
		return
	}
	command := strings.ToUpper(fields[0])
	args := fields[1:]

	switch command {
	case "REM":
		// Comments are free-form; cuelib keeps only a handful of
		// well-known REM sub-keys (DISCID, GENRE, ...), rest ignored.
		p.handleREM(args)
	case "PERFORMER":
		p.setString(line, args, func(s string) {
			if p.currentTrack != nil {
				p.currentTrack.Performer = s
			} else {
				p.sheet.Performer = s
			}
		})
	case "SONGWRITER":
		p.setString(line, args, func(s string) {
			if p.currentTrack != nil {
				p.currentTrack.Songwriter = s
			} else {
				p.sheet.Songwriter = s
			}
		})
	case "TITLE":
		p.setString(line, args, func(s string) {
			if p.currentTrack != nil {
				p.currentTrack.Title = s
			} else {
				p.sheet.Title = s
			}
		})
	case "CATALOG":
		p.setString(line, args, func(s string) { p.sheet.Catalog = s })
	case "CDTEXTFILE":
		p.setString(line, args, func(s string) { p.sheet.CDTextFile = s })
	case "ISRC":
		p.setString(line, args, func(s string) {
			if p.currentTrack != nil {
				p.currentTrack.ISRC = s
			} else {
				p.warn(line, "ISRC outside of a track")
			}
		})
	case "FLAGS":
		if p.currentTrack != nil {
			p.currentTrack.Flags = append(p.currentTrack.Flags, args...)
		} else {
			p.warn(line, "FLAGS outside of a track")
		}
	case "FILE":
		p.handleFILE(line, args)
	case "TRACK":
		p.handleTRACK(line, args)
	case "INDEX":
		p.handleIndex(line, args, false)
	case "PREGAP":
		p.handleIndex(line, args, true)
	case "POSTGAP":
		// Recorded as a warning-free no-op: cuelib's data model has no
		// slot for POSTGAP, and the spec's supplemented model doesn't
		// add one either.
	default:
		p.warn(line, "unrecognised command "+command)
	}
}

func (p *parser) handleREM(args []string) {
	if len(args) < 2 {
		return
	}
	switch strings.ToUpper(args[0]) {
	case "DISCID":
		p.sheet.Discid = strings.Join(args[1:], " ")
	case "GENRE":
		p.sheet.Genre = strings.Join(args[1:], " ")
	case "COMMENT":
		p.sheet.Comment = strings.Join(args[1:], " ")
	case "DATE":
		if year, err := strconv.Atoi(args[1]); err == nil {
			p.sheet.Year = year
		}
	}
}

func (p *parser) setString(line lineOfInput, args []string, set func(string)) {
	if len(args) == 0 {
		p.warn(line, "missing argument")
		return
	}
	set(strings.Join(args, " "))
}

func (p *parser) handleFILE(line lineOfInput, args []string) {
	if len(args) < 2 {
		p.warn(line, "FILE requires a name and a type")
		return
	}
	fileType := args[len(args)-1]
	name := strings.Join(args[:len(args)-1], " ")
	p.sheet.FileData = append(p.sheet.FileData, FileData{
		File:     name,
		FileType: DataType(strings.ToUpper(fileType)),
	})
	p.currentFile = &p.sheet.FileData[len(p.sheet.FileData)-1]
	p.currentTrack = nil
}

func (p *parser) handleTRACK(line lineOfInput, args []string) {
	if p.currentFile == nil {
		p.warn(line, "TRACK outside of a FILE block")
		return
	}
	if len(args) < 2 {
		p.warn(line, "TRACK requires a number and a data type")
		return
	}
	number, err := strconv.Atoi(args[0])
	if err != nil {
		p.warn(line, "malformed track number "+args[0])
		return
	}
	p.currentFile.TrackData = append(p.currentFile.TrackData, TrackData{
		Number:   number,
		DataType: TrackDataType(strings.ToUpper(args[1])),
	})
	p.currentTrack = &p.currentFile.TrackData[len(p.currentFile.TrackData)-1]
}

func (p *parser) handleIndex(line lineOfInput, args []string, isPregap bool) {
	if p.currentTrack == nil {
		p.warn(line, "index outside of a track")
		return
	}

	var number int
	var posArg string
	if isPregap {
		number = 0
		if len(args) != 1 {
			p.warn(line, "PREGAP requires exactly one position")
			return
		}
		posArg = args[0]
	} else {
		if len(args) != 2 {
			p.warn(line, "INDEX requires a number and a position")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			p.warn(line, "malformed index number "+args[0])
			return
		}
		number = n
		posArg = args[1]
	}

	pos, ok := parsePosition(posArg)
	if !ok {
		p.warn(line, "malformed position "+posArg)
		return
	}
	p.currentTrack.Indices = append(p.currentTrack.Indices, Index{Number: number, Position: pos})
}

// parsePosition parses a MM:SS:FF timestamp. FF must be below
// FramesPerSecond; MM and SS are otherwise unconstrained.
func parsePosition(s string) (Position, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Position{}, false
	}
	minutes, err1 := strconv.Atoi(parts[0])
	seconds, err2 := strconv.Atoi(parts[1])
	frames, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Position{}, false
	}
	if frames < 0 || frames >= FramesPerSecond {
		return Position{}, false
	}
	return Position{Minutes: minutes, Seconds: seconds, Frames: frames}, true
}

// tokenize splits a cue sheet line into fields, honouring double-quoted
// strings (e.g. FILE "track 01.wav" WAVE) the way cue sheets conventionally
// quote names containing spaces.
func tokenize(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false
	hasToken := false

	flush := func() {
		if hasToken {
			fields = append(fields, current.String())
			current.Reset()
			hasToken = false
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case r == ' ' || r == '\t':
			if inQuotes {
				current.WriteRune(r)
			} else {
				flush()
			}
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}
	flush()
	return fields
}
