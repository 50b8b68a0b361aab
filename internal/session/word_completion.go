package session

import (
	"go.uber.org/zap"

	"github.com/abhisek/otiyot/internal/catalog"
)

const wordOptionCount = 4

// WordCompletion walks the word catalog in order and asks for the missing
// letter of each word. Every question gets exactly one attempt.
type WordCompletion struct {
	engine

	words    []catalog.Word
	alphabet []catalog.Letter
}

var _ QuizSession = (*WordCompletion)(nil)

// NewWordCompletion returns an unconfigured session. Distractors are drawn
// from alphabet, which needs at least four distinct letters.
func NewWordCompletion(words []catalog.Word, alphabet []catalog.Letter, opts ...Option) (*WordCompletion, error) {
	distinct := make(map[string]bool, len(alphabet))
	for _, l := range alphabet {
		distinct[l.ID] = true
	}
	if len(distinct) < wordOptionCount {
		return nil, ErrAlphabetTooSmall
	}

	return &WordCompletion{
		engine:   newEngine(ModeWordCompletion, opts),
		words:    append([]catalog.Word(nil), words...),
		alphabet: append([]catalog.Letter(nil), alphabet...),
	}, nil
}

// Configure loads the first word. An empty catalog completes at once.
func (w *WordCompletion) Configure() error {
	if w.phase != PhaseUninitialized {
		return ErrAlreadyConfigured
	}

	w.total = len(w.words)
	w.index = 1
	w.log.Info("word completion configured", zap.Int("words", w.total))

	if w.total == 0 {
		w.complete(false)
		return nil
	}
	w.nextQuestion()
	return nil
}

func (w *WordCompletion) nextQuestion() {
	word := w.words[w.index-1]
	w.load(Question{
		Choices: w.options(word.MissingLetter),
		Answer:  word.MissingLetter,
		Word:    &word,
	})
}

// options returns answer plus three distractors in random order.
func (w *WordCompletion) options(answer catalog.Letter) []catalog.Letter {
	seen := map[string]bool{answer.ID: true}
	candidates := make([]catalog.Letter, 0, len(w.alphabet))
	for _, l := range w.alphabet {
		if seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		candidates = append(candidates, l)
	}

	opts := make([]catalog.Letter, 0, wordOptionCount)
	opts = append(opts, answer)
	for _, i := range w.opts.rng.Perm(len(candidates))[:wordOptionCount-1] {
		opts = append(opts, candidates[i])
	}
	w.opts.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

func (w *WordCompletion) SubmitAnswer(letterID string) {
	choice, ok := w.accept(letterID)
	if !ok {
		return
	}
	w.resolve(choice)
	w.schedule(w.opts.feedbackDelay, w.next)
}

func (w *WordCompletion) Advance() {
	if w.phase != PhaseResolved {
		return
	}
	w.next()
}

func (w *WordCompletion) next() {
	w.CancelPendingAdvance()
	w.index++
	if w.index > w.total {
		w.complete(false)
		return
	}
	w.nextQuestion()
}
