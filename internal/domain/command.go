package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError marks malformed command input. It is always recoverable: the
// orchestrator reports it in the status line and the session continues.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func parseErrorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// PlayTargetKind selects the resolution strategy for "which station to play".
type PlayTargetKind int

const (
	PlaySelected PlayTargetKind = iota
	PlayIndex
	PlayQuery
)

type PlayTarget struct {
	Kind  PlayTargetKind
	Index int    // 1-based, PlayIndex only
	Query string // PlayQuery only
}

type CommandKind int

const (
	CmdPlay CommandKind = iota
	CmdStop
	CmdPause
	CmdResume
	CmdSearch
	CmdFilter
	CmdClearFilters
	CmdSort
	CmdFavorites
	CmdFavorite
	CmdUnfavorite
	CmdQuit
	CmdHelp
	CmdVolume
)

// Command is the closed union produced by ParseCommand. Only the fields that
// belong to the Kind are meaningful.
type Command struct {
	Kind    CommandKind
	Target  PlayTarget
	Text    string
	Filters StationFilters
	Sort    StationSort
	Volume  int
}

// ParseCommand turns slash-prefixed free text into a Command. Invalid input
// never yields a Command; it fails with a *ParseError instead. The parser is
// pure: no side effects, no I/O.
func ParseCommand(input string) (Command, error) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "/") {
		return Command{}, parseErrorf("slash commands must start with '/'")
	}

	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		return Command{}, parseErrorf("empty command")
	}
	verb, args := fields[0], fields[1:]

	switch verb {
	case "play":
		return parsePlay(args)
	case "stop":
		return noArgCommand(CmdStop, verb, args)
	case "pause":
		return noArgCommand(CmdPause, verb, args)
	case "resume":
		return noArgCommand(CmdResume, verb, args)
	case "search":
		if len(args) == 0 {
			return Command{}, parseErrorf("usage: /search <query>")
		}
		return Command{Kind: CmdSearch, Text: strings.Join(args, " ")}, nil
	case "filter":
		return parseFilter(args)
	case "clear-filters":
		return noArgCommand(CmdClearFilters, verb, args)
	case "sort":
		return parseSortCommand(args)
	case "favorites":
		return noArgCommand(CmdFavorites, verb, args)
	case "fav", "favorite":
		return noArgCommand(CmdFavorite, verb, args)
	case "unfav", "unfavorite":
		return noArgCommand(CmdUnfavorite, verb, args)
	case "volume":
		return parseVolume(args)
	case "quit", "q":
		return noArgCommand(CmdQuit, verb, args)
	case "help":
		return noArgCommand(CmdHelp, verb, args)
	default:
		return Command{}, parseErrorf("unknown command: %s", verb)
	}
}

func noArgCommand(kind CommandKind, verb string, args []string) (Command, error) {
	if len(args) > 0 {
		return Command{}, parseErrorf("/%s takes no arguments", verb)
	}
	return Command{Kind: kind}, nil
}

func parsePlay(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{Kind: CmdPlay, Target: PlayTarget{Kind: PlaySelected}}, nil
	}
	arg := strings.Join(args, " ")
	if arg == "selected" {
		return Command{Kind: CmdPlay, Target: PlayTarget{Kind: PlaySelected}}, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n == 0 {
			return Command{}, parseErrorf("play index must be ≥ 1")
		}
		if n > 0 {
			return Command{Kind: CmdPlay, Target: PlayTarget{Kind: PlayIndex, Index: n}}, nil
		}
	}
	return Command{Kind: CmdPlay, Target: PlayTarget{Kind: PlayQuery, Query: arg}}, nil
}

func parseFilter(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, parseErrorf("usage: /filter key=value ... (keys: country, language, tag, codec, min_bitrate)")
	}

	var filters StationFilters
	for _, token := range args {
		if strings.Count(token, "=") != 1 {
			return Command{}, parseErrorf("filter arguments must look like key=value (got %q)", token)
		}
		key, value, _ := strings.Cut(token, "=")
		if value == "" {
			return Command{}, parseErrorf("filter %s needs a value", key)
		}
		switch key {
		case "country":
			filters.Country = value
		case "language":
			filters.Language = value
		case "tag":
			filters.Tag = value
		case "codec":
			filters.Codec = value
		case "min_bitrate":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return Command{}, parseErrorf("min_bitrate must be an integer ≥ 0 (got %q)", value)
			}
			filters.MinBitrate = n
		default:
			return Command{}, parseErrorf("unknown filter key %q (expected country, language, tag, codec, min_bitrate)", key)
		}
	}
	return Command{Kind: CmdFilter, Filters: filters}, nil
}

func parseSortCommand(args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, parseErrorf("usage: /sort <name|votes|clicks|bitrate>")
	}
	sort, err := ParseSort(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdSort, Sort: sort}, nil
}

func parseVolume(args []string) (Command, error) {
	switch {
	case len(args) == 0:
		return Command{}, parseErrorf("usage: /volume <0-100>")
	case len(args) > 1:
		return Command{}, parseErrorf("volume takes a single value")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, parseErrorf("volume must be an integer (got %q)", args[0])
	}
	if n < 0 {
		return Command{}, parseErrorf("volume cannot be negative")
	}
	if n > 100 {
		return Command{}, parseErrorf("volume must be between 0 and 100")
	}
	return Command{Kind: CmdVolume, Volume: n}, nil
}
