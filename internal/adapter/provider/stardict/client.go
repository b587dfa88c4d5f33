// Package stardict implements dictionary lookups against an ECDICT-schema
// SQLite database (the "stardict" table).
package stardict

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver for database/sql

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// queryChunk keeps each IN list under SQLite's bound-variable limit.
const queryChunk = 500

// noLemmatize lists function words whose exchange-based lemma is wrong
// (e.g. "an" -> "a"). They are always looked up as-is.
var noLemmatize = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		an the some any this that these those
		my your his her its our their
		i me you he him she we us they them
		who whom whose which what where when why how
		am is are was were be been being
		have has had having
		do does did doing done
		will would shall should can could may might must
		a of to in for on with at by from
		as but or and if than so just only also`) {
		noLemmatize[w] = struct{}{}
	}
}

// Client looks words up in a read-only StarDict database.
type Client struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens the database at path read-only and verifies it is reachable.
func Open(ctx context.Context, path string, log *slog.Logger) (*Client, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_query_only=1")
	if err != nil {
		return nil, fmt.Errorf("stardict: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("stardict: ping %s: %w", path, err)
	}
	return &Client{db: db, log: log.With("provider", "stardict")}, nil
}

// Close releases the database handle.
func (c *Client) Close() error {
	return c.db.Close()
}

// Lookup returns the enrichment of every known word, keyed by the input word.
// Unknown words are omitted. The returned Lemma is the dictionary headword
// that was actually used: the word's lemma when the dictionary has it,
// otherwise the word itself. Any database failure yields ErrLookupUnavailable.
func (c *Client) Lookup(ctx context.Context, words []string) (map[string]domain.WordEnrichment, error) {
	result := make(map[string]domain.WordEnrichment, len(words))
	if len(words) == 0 {
		return result, nil
	}

	rows, err := c.fetch(ctx, words)
	if err != nil {
		return nil, err
	}

	stems := make(map[string]string, len(words))
	var missingStems []string
	for _, w := range words {
		stem := w
		if _, skip := noLemmatize[w]; !skip {
			if e, ok := rows[w]; ok {
				if l := lemmaOf(e.exchange); l != "" {
					stem = l
				}
			}
		}
		stems[w] = stem
		if _, ok := rows[stem]; !ok {
			missingStems = append(missingStems, stem)
		}
	}

	if len(missingStems) > 0 {
		extra, err := c.fetch(ctx, missingStems)
		if err != nil {
			return nil, err
		}
		for k, v := range extra {
			rows[k] = v
		}
	}

	for _, w := range words {
		stem := stems[w]
		if e, ok := rows[stem]; ok {
			result[w] = e.enrichment(stem)
			continue
		}
		if e, ok := rows[w]; ok && stem != w {
			result[w] = e.enrichment(w)
		}
	}

	c.log.DebugContext(ctx, "lookup done", slog.Int("requested", len(words)), slog.Int("found", len(result)))
	return result, nil
}

// fetch loads rows for the given headwords, keyed by lowercase headword.
func (c *Client) fetch(ctx context.Context, words []string) (map[string]entry, error) {
	out := make(map[string]entry, len(words))

	for start := 0; start < len(words); start += queryChunk {
		end := min(start+queryChunk, len(words))

		query, args, err := sq.Select(
			"word", "phonetic", "definition", "translation", "pos",
			"collins", "oxford", "tag", "bnc", "frq", "exchange",
		).From("stardict").Where(sq.Eq{"word": words[start:end]}).ToSql()
		if err != nil {
			return nil, fmt.Errorf("stardict: build: %w", err)
		}

		rows, err := c.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, errors.Join(domain.ErrLookupUnavailable, fmt.Errorf("stardict: query: %w", err))
		}

		for rows.Next() {
			var e entry
			if err := rows.Scan(&e.word, &e.phonetic, &e.definition, &e.translation, &e.pos,
				&e.collins, &e.oxford, &e.tag, &e.bnc, &e.frq, &e.exchange); err != nil {
				_ = rows.Close()
				return nil, errors.Join(domain.ErrLookupUnavailable, fmt.Errorf("stardict: scan: %w", err))
			}
			key := strings.ToLower(e.word)
			if _, dup := out[key]; !dup {
				out[key] = e
			}
		}
		err = rows.Err()
		_ = rows.Close()
		if err != nil {
			return nil, errors.Join(domain.ErrLookupUnavailable, fmt.Errorf("stardict: rows: %w", err))
		}
	}

	return out, nil
}

// lemmaOf extracts the "0:" (lemma) form from an ECDICT exchange string such
// as "0:run/1:i".
func lemmaOf(exchange sql.NullString) string {
	if !exchange.Valid {
		return ""
	}
	for _, part := range strings.Split(exchange.String, "/") {
		if l, ok := strings.CutPrefix(part, "0:"); ok {
			return strings.ToLower(strings.TrimSpace(l))
		}
	}
	return ""
}

type entry struct {
	word        string
	phonetic    sql.NullString
	definition  sql.NullString
	translation sql.NullString
	pos         sql.NullString
	collins     sql.NullInt64
	oxford      sql.NullInt64
	tag         sql.NullString
	bnc         sql.NullInt64
	frq         sql.NullInt64
	exchange    sql.NullString
}

func (e entry) enrichment(lemma string) domain.WordEnrichment {
	return domain.WordEnrichment{
		Lemma:         &lemma,
		Phonetic:      nonEmpty(e.phonetic),
		Definition:    nonEmpty(e.definition),
		Translation:   nonEmpty(e.translation),
		PartOfSpeech:  nonEmpty(e.pos),
		CollinsStars:  positive(e.collins),
		Oxford3000:    e.oxford.Valid && e.oxford.Int64 > 0,
		Tags:          nonEmpty(e.tag),
		BNCRank:       positive(e.bnc),
		FrequencyRank: positive(e.frq),
		Exchange:      nonEmpty(e.exchange),
	}
}

func nonEmpty(s sql.NullString) *string {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return nil
	}
	v := s.String
	return &v
}

// positive maps ECDICT's 0 ("no rank") to nil.
func positive(n sql.NullInt64) *int {
	if !n.Valid || n.Int64 <= 0 {
		return nil
	}
	v := int(n.Int64)
	return &v
}
