package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizflow/internal/api"
	"github.com/abhisek/quizflow/internal/coach"
	"github.com/abhisek/quizflow/internal/history"
	"github.com/abhisek/quizflow/internal/nav"
	"github.com/abhisek/quizflow/internal/prefetch"
	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/router"
	"github.com/abhisek/quizflow/internal/screen"
	"github.com/abhisek/quizflow/internal/stats"
	"github.com/abhisek/quizflow/internal/store"
	"github.com/abhisek/quizflow/internal/ui/components"
	"github.com/abhisek/quizflow/internal/ui/layout"
)

const (
	// feedPageSize is how many candidates the opening listing requests.
	feedPageSize = 10

	// Terminal cells are coarser than the pixel-tuned gesture
	// thresholds, so drag coordinates are scaled before classification.
	swipeCellWidth  = 10
	swipeCellHeight = 20

	// One wheel tick maps to these deltas. A downward tick accumulates;
	// an upward tick is large enough to fire the immediate back path.
	wheelStepDown = 80
	wheelStepUp   = 120
)

// Backend is the slice of the API client the feed needs. *api.Client
// satisfies it.
type Backend interface {
	Authenticated() bool
	Question(ctx context.Context, permalink string) (*api.QuestionPage, error)
	Quiz(ctx context.Context, quizID int64) (*api.QuizSummary, error)
	NextFeed(ctx context.Context, params api.NextFeedParams) ([]quiz.FeedItem, error)
	QuizStatistics(ctx context.Context, quizID int64) (*api.QuizStatistics, error)
	RecordAnswer(ctx context.Context, quizID int64, req api.RecordAnswerRequest) error
}

// FeedScreen drives the quiz feed: one question at a time, swipe or
// key navigation between questions and quizzes, local answer checking
// with optional coach explanations.
type FeedScreen struct {
	client  Backend
	events  store.EventRepo
	coach   *coach.Service
	ctrl    *nav.Controller
	queue   *prefetch.Engine
	tracker *history.Tracker
	stats   *stats.Cache

	swipe nav.Swipe
	wheel nav.Wheel

	// Active answer widget; which one is live depends on the question
	// type of the current position.
	choice   components.Choice
	ordering components.Ordering
	input    components.TextInput
	blanks   components.Blanks

	hintsShown int
	submitted  bool
	answer     quiz.Answer
	result     quiz.Result
	started    time.Time

	explanation *coach.Explanation
	coachBusy   bool

	showStats  bool
	slide      nav.Slide
	pendingSeq uint64
	banner     string
	errMsg     string
	loading    bool
}

var _ screen.Screen = (*FeedScreen)(nil)
var _ screen.KeyHintProvider = (*FeedScreen)(nil)
var _ screen.StatusProvider = (*FeedScreen)(nil)

// New creates a FeedScreen with injected dependencies. coachSvc may be
// nil when no provider is configured; explanations are then skipped.
func New(client Backend, sessionRepo store.SessionRepo, eventRepo store.EventRepo, coachSvc *coach.Service) *FeedScreen {
	tracker := history.Load(sessionRepo)
	order := nav.LoadFeedOrder(sessionRepo)
	queue := prefetch.New(client)
	return &FeedScreen{
		client:  client,
		events:  eventRepo,
		coach:   coachSvc,
		ctrl:    nav.NewController(client, queue, tracker, order),
		queue:   queue,
		tracker: tracker,
		stats:   stats.New(client),
		loading: true,
	}
}

func (s *FeedScreen) Init() tea.Cmd {
	return s.loadFeed()
}

func (s *FeedScreen) Title() string {
	return "Feed"
}

// Status summarizes the position for the header: quiz difficulty plus
// question progress.
func (s *FeedScreen) Status() string {
	pos, ok := s.ctrl.Position()
	if !ok {
		return ""
	}
	label := pos.Quiz.Difficulty.Label
	progress := fmt.Sprintf("Q %d/%d", pos.Question.Ordinal, pos.Quiz.QuestionCount)
	if label == "" {
		return progress
	}
	return label + "  " + progress
}

func (s *FeedScreen) KeyHints() []layout.KeyHint {
	if s.loading || s.errMsg != "" {
		return nil
	}
	if s.submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "J/K", Description: "Next/prev quiz"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "←→", Description: "Questions"},
		{Key: "J/K", Description: "Quizzes"},
	}
	pos, ok := s.ctrl.Position()
	if ok && len(pos.Question.Hints) > 0 {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
	}
	hints = append(hints, layout.KeyHint{Key: "S", Description: "Stats"})
	return hints
}

func (s *FeedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedReadyMsg:
		return s.handleFeedReady(msg)
	case navResolvedMsg:
		return s.handleNavResolved(msg)
	case transitionDoneMsg:
		return s.handleTransitionDone()
	case prefetchDoneMsg:
		return s.handlePrefetchDone(msg)
	case statsReadyMsg:
		s.stats.Apply(msg.QuizID, msg.Stats, msg.Err)
		return s, nil
	case answerRecordedMsg:
		return s.handleAnswerRecorded(msg)
	case coachReadyMsg:
		return s.handleCoachReady(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.MouseWheelMsg:
		return s.handleWheel(msg)
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			s.swipe.Begin(msg.X*swipeCellWidth, msg.Y*swipeCellHeight)
		}
		return s, nil
	case tea.MouseReleaseMsg:
		if s.swipe.Active() {
			intent := s.swipe.End(msg.X*swipeCellWidth, msg.Y*swipeCellHeight)
			return s, s.dispatch(intent)
		}
		return s, nil
	}

	// Cursor blink and friends for the text widgets.
	if s.editingText() {
		return s, s.forwardToText(msg)
	}
	return s, nil
}

// editingText reports whether keystrokes should reach a text widget.
func (s *FeedScreen) editingText() bool {
	if s.submitted || s.loading || s.ctrl.State() != nav.StateIdle {
		return false
	}
	pos, ok := s.ctrl.Position()
	if !ok {
		return false
	}
	t := pos.Question.Type
	return t == quiz.TypeShortText || t == quiz.TypeFillBlank
}

func (s *FeedScreen) forwardToText(msg tea.Msg) tea.Cmd {
	pos, ok := s.ctrl.Position()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	if pos.Question.Type == quiz.TypeFillBlank {
		s.blanks, cmd = s.blanks.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return cmd
}

func (s *FeedScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.loading {
		return s, nil
	}
	s.banner = ""

	key := msg.String()

	// Navigation works in every interaction state; the controller
	// drops intents while a move is already in flight.
	switch key {
	case "right":
		return s, s.dispatch(nav.IntentNextQuestion)
	case "left":
		return s, s.dispatch(nav.IntentPrevQuestion)
	case "J", "pgdown":
		return s, s.dispatch(nav.IntentNextQuiz)
	case "K", "pgup":
		return s, s.dispatch(nav.IntentPrevQuiz)
	case "ctrl+s":
		return s, s.toggleStats()
	case "ctrl+h":
		s.revealHint()
		return s, nil
	}

	if key == "enter" {
		if s.submitted {
			return s, s.advance()
		}
		return s.submit()
	}

	if s.submitted || s.ctrl.State() != nav.StateIdle {
		return s, nil
	}

	pos, ok := s.ctrl.Position()
	if !ok {
		return s, nil
	}

	// Text questions own the remaining keys except tab.
	if s.editingText() {
		if key == "tab" && pos.Question.Type == quiz.TypeFillBlank {
			s.blanks.Next()
			return s, nil
		}
		return s, s.forwardToText(msg)
	}

	switch pos.Question.Type {
	case quiz.TypeSingleChoice, quiz.TypeMultiChoice:
		switch key {
		case "up", "k":
			s.choice.Up()
		case "down", "j":
			s.choice.Down()
		case "space", " ":
			s.choice.Toggle()
		case "1", "2", "3", "4":
			s.choice.Pick(int(key[0] - '0'))
		case "h":
			s.revealHint()
		case "s":
			return s, s.toggleStats()
		}
	case quiz.TypeOrdering:
		switch key {
		case "up", "k":
			s.ordering.Up()
		case "down", "j":
			s.ordering.Down()
		case "space", " ":
			s.ordering.Grab()
		case "h":
			s.revealHint()
		case "s":
			return s, s.toggleStats()
		}
	}
	return s, nil
}

func (s *FeedScreen) handleWheel(msg tea.MouseWheelMsg) (screen.Screen, tea.Cmd) {
	switch msg.Button {
	case tea.MouseWheelDown:
		return s, s.dispatch(s.wheel.Add(wheelStepDown))
	case tea.MouseWheelUp:
		return s, s.dispatch(s.wheel.Add(-wheelStepUp))
	}
	return s, nil
}

func (s *FeedScreen) handleFeedReady(msg feedReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.loading = false
		return s, nil
	}
	if err := s.ctrl.RecordListing(msg.Items); err != nil {
		s.banner = "Couldn't save the feed order locally."
	}
	s.ctrl.SetPosition(nav.Position{Quiz: msg.Page.Quiz, Question: msg.Page.Question})
	s.loading = false
	s.resetQuestion()
	return s, s.maybeRefill()
}

func (s *FeedScreen) handleNavResolved(msg navResolvedMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.pendingSeq {
		return s, nil
	}
	if s.ctrl.Complete(msg.Seq, msg.Target, msg.Err) {
		s.slide = msg.Target.Slide
		return s, transitionCmd()
	}
	// A nil target with no error is the silent backward degrade; stay
	// put without comment.
	if msg.Err != nil && !api.IsCanceled(msg.Err) {
		s.banner = "Couldn't load that one. Try again."
	}
	return s, nil
}

func (s *FeedScreen) handleTransitionDone() (screen.Screen, tea.Cmd) {
	committed, ok := s.ctrl.Commit()
	if !ok {
		return s, nil
	}
	s.resetQuestion()

	var cmds []tea.Cmd
	if committed.QuizChanged {
		s.wheel.Reset()
		if cmd := s.maybeRefill(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if s.showStats {
			if cmd := s.ensureStats(committed.Position.Quiz.ID); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return s, tea.Batch(cmds...)
}

func (s *FeedScreen) handlePrefetchDone(msg prefetchDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// A failed refill is invisible; navigation falls back to
		// direct fetches until the next cycle.
		return s, nil
	}
	s.queue.Apply(msg.Cycle, msg.Items)
	return s, nil
}

// handleAnswerRecorded rolls back the submitted state when the server
// rejected the answer, so the learner may retry. The local answer log
// entry stands either way.
func (s *FeedScreen) handleAnswerRecorded(msg answerRecordedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err == nil || api.IsCanceled(msg.Err) {
		return s, nil
	}
	s.banner = "Couldn't send your answer. Try again."
	pos, ok := s.ctrl.Position()
	if ok && pos.Question.ID == msg.QuestionID && s.submitted {
		s.rollbackSubmission(&pos.Question)
	}
	return s, nil
}

func (s *FeedScreen) rollbackSubmission(q *quiz.Question) {
	s.submitted = false
	s.result = quiz.Result{}
	s.explanation = nil
	s.coachBusy = false
	switch q.Type {
	case quiz.TypeSingleChoice, quiz.TypeMultiChoice:
		s.choice.Unlock()
	case quiz.TypeShortText:
		s.input.Unsubmit()
	case quiz.TypeOrdering:
		s.ordering.Unlock()
	case quiz.TypeFillBlank:
		s.blanks.Unlock()
	}
}

func (s *FeedScreen) handleCoachReady(msg coachReadyMsg) (screen.Screen, tea.Cmd) {
	pos, ok := s.ctrl.Position()
	if !ok || pos.Question.ID != msg.QuestionID {
		return s, nil
	}
	s.coachBusy = false
	if msg.Err == nil {
		s.explanation = msg.Exp
	}
	return s, nil
}

// dispatch hands an intent to the controller and turns the outcome
// into commands. A nil intent or a dropped dispatch is a no-op.
func (s *FeedScreen) dispatch(intent nav.Intent) tea.Cmd {
	if intent == nav.IntentNone || s.loading {
		return nil
	}
	out := s.ctrl.Dispatch(intent)
	switch {
	case out.Dropped:
		return nil
	case out.Target != nil:
		s.slide = out.Target.Slide
		return transitionCmd()
	case out.Resolution != nil:
		res := out.Resolution
		s.pendingSeq = res.Seq
		return func() tea.Msg {
			target, err := s.ctrl.Resolve(context.Background(), res)
			return navResolvedMsg{Seq: res.Seq, Target: target, Err: err}
		}
	}
	return nil
}

// advance moves forward after a submission: next question within the
// quiz if one exists, otherwise the next quiz.
func (s *FeedScreen) advance() tea.Cmd {
	pos, ok := s.ctrl.Position()
	if !ok {
		return nil
	}
	if pos.Question.NextPermalink != "" {
		return s.dispatch(nav.IntentNextQuestion)
	}
	return s.dispatch(nav.IntentNextQuiz)
}

func (s *FeedScreen) submit() (screen.Screen, tea.Cmd) {
	pos, ok := s.ctrl.Position()
	if !ok || s.ctrl.State() != nav.StateIdle {
		return s, nil
	}
	q := pos.Question

	ans := s.collectAnswer(&q)
	result, err := quiz.Evaluate(&q, ans)
	if errors.Is(err, quiz.ErrEmptyAnswer) {
		s.banner = "Enter an answer first."
		return s, nil
	}
	if err != nil {
		s.banner = err.Error()
		return s, nil
	}

	s.submitted = true
	s.answer = ans
	s.result = result
	s.lockWidgets(&q, result)

	timeMs := int(time.Since(s.started).Milliseconds())
	_ = s.events.AppendAnswer(context.Background(), store.AnswerEventData{
		QuizID:       pos.Quiz.ID,
		QuestionID:   q.ID,
		QuestionType: string(q.Type),
		Answer:       encodeAnswer(&q, ans),
		Correct:      result.Correct,
		HintsUsed:    s.hintsShown,
		TimeMs:       timeMs,
	})
	s.stats.Invalidate(pos.Quiz.ID)

	var cmds []tea.Cmd
	if s.client.Authenticated() {
		cmds = append(cmds, s.recordAnswerCmd(pos.Quiz.ID, &q, ans))
	}
	if !result.Correct && s.coach != nil {
		s.coachBusy = true
		cmds = append(cmds, s.explainCmd(&q, ans, result))
	}
	return s, tea.Batch(cmds...)
}

func (s *FeedScreen) collectAnswer(q *quiz.Question) quiz.Answer {
	ans := quiz.Answer{
		QuestionID:  q.ID,
		SubmittedAt: time.Now(),
	}
	for i := 1; i <= s.hintsShown; i++ {
		ans.HintsUsed = append(ans.HintsUsed, i)
	}
	switch q.Type {
	case quiz.TypeSingleChoice:
		if sel := s.choice.Selected(); len(sel) > 0 {
			ans.Option = sel[0]
		}
	case quiz.TypeMultiChoice:
		ans.Options = s.choice.Selected()
	case quiz.TypeShortText:
		ans.Text = s.input.Value()
	case quiz.TypeOrdering:
		ans.Order = s.ordering.Order()
	case quiz.TypeFillBlank:
		ans.Blanks = s.blanks.Values()
	}
	return ans
}

func (s *FeedScreen) lockWidgets(q *quiz.Question, result quiz.Result) {
	switch q.Type {
	case quiz.TypeSingleChoice:
		s.choice.Lock([]int{q.CorrectOption})
	case quiz.TypeMultiChoice:
		s.choice.Lock(q.CorrectOptions)
	case quiz.TypeShortText:
		s.input.Submit(result.Correct)
	case quiz.TypeOrdering:
		s.ordering.Lock(q.CorrectOrder)
	case quiz.TypeFillBlank:
		s.blanks.Lock(q.CorrectBlanks)
	}
}

func (s *FeedScreen) recordAnswerCmd(quizID int64, q *quiz.Question, ans quiz.Answer) tea.Cmd {
	req := api.RecordAnswerRequest{
		QuestionID: q.ID,
		Answer:     answerPayload(q, ans),
		HintsUsed:  ans.HintsUsed,
	}
	if q.Type == quiz.TypeSingleChoice {
		req.SelectedOption = q.OptionText(ans.Option)
	}
	questionID := q.ID
	return func() tea.Msg {
		err := s.client.RecordAnswer(context.Background(), quizID, req)
		return answerRecordedMsg{QuizID: quizID, QuestionID: questionID, Err: err}
	}
}

func (s *FeedScreen) explainCmd(q *quiz.Question, ans quiz.Answer, result quiz.Result) tea.Cmd {
	question := *q
	return func() tea.Msg {
		exp, err := s.coach.Explain(context.Background(), &question, ans, result)
		return coachReadyMsg{QuestionID: question.ID, Exp: exp, Err: err}
	}
}

func (s *FeedScreen) revealHint() {
	if s.submitted {
		return
	}
	pos, ok := s.ctrl.Position()
	if !ok {
		return
	}
	if s.hintsShown < len(pos.Question.Hints) {
		s.hintsShown++
	}
}

func (s *FeedScreen) toggleStats() tea.Cmd {
	s.showStats = !s.showStats
	if !s.showStats {
		return nil
	}
	pos, ok := s.ctrl.Position()
	if !ok {
		return nil
	}
	return s.ensureStats(pos.Quiz.ID)
}

func (s *FeedScreen) ensureStats(quizID int64) tea.Cmd {
	if !s.stats.BeginFetch(quizID) {
		return nil
	}
	return func() tea.Msg {
		st, err := s.stats.Fetch(context.Background(), quizID)
		return statsReadyMsg{QuizID: quizID, Stats: st, Err: err}
	}
}

// maybeRefill starts a prefetch cycle when the queue runs low.
func (s *FeedScreen) maybeRefill() tea.Cmd {
	pos, ok := s.ctrl.Position()
	if !ok || !s.queue.NeedsRefill() {
		return nil
	}
	ctx, cycle := s.queue.StartCycle(context.Background())
	quizID := pos.Quiz.ID
	permalink := pos.Question.Permalink
	exclude := s.tracker.Entries()
	return func() tea.Msg {
		items, err := s.queue.RunCycle(ctx, quizID, permalink, exclude)
		return prefetchDoneMsg{Cycle: cycle, Items: items, Err: err}
	}
}

// resetQuestion rebuilds the interaction state for the question at the
// current position.
func (s *FeedScreen) resetQuestion() {
	s.hintsShown = 0
	s.submitted = false
	s.answer = quiz.Answer{}
	s.result = quiz.Result{}
	s.explanation = nil
	s.coachBusy = false
	s.slide = nav.SlideNone
	s.started = time.Now()

	pos, ok := s.ctrl.Position()
	if !ok {
		return
	}
	q := pos.Question
	switch q.Type {
	case quiz.TypeSingleChoice:
		s.choice = components.NewChoice(optionTexts(&q), false)
	case quiz.TypeMultiChoice:
		s.choice = components.NewChoice(optionTexts(&q), true)
	case quiz.TypeShortText:
		s.input = components.NewTextInput("Type your answer...", 60)
	case quiz.TypeOrdering:
		s.ordering = components.NewOrdering(optionTexts(&q))
	case quiz.TypeFillBlank:
		s.blanks = components.NewBlanks(len(q.CorrectBlanks))
	}
}

func (s *FeedScreen) loadFeed() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		items, err := s.client.NextFeed(ctx, api.NextFeedParams{Limit: feedPageSize})
		if err != nil {
			return feedReadyMsg{Err: err}
		}
		if len(items) == 0 {
			return feedReadyMsg{Err: errors.New("the feed returned no quizzes")}
		}
		page, err := s.client.Question(ctx, items[0].FirstQuestionPermalink)
		if err != nil {
			return feedReadyMsg{Err: err}
		}
		return feedReadyMsg{Items: items, Page: page}
	}
}

func transitionCmd() tea.Cmd {
	return tea.Tick(nav.TransitionDuration, func(time.Time) tea.Msg {
		return transitionDoneMsg{}
	})
}

func optionTexts(q *quiz.Question) []string {
	texts := make([]string, len(q.Options))
	for i, opt := range q.Options {
		texts[i] = mediaText(opt)
	}
	return texts
}

func mediaText(m quiz.Media) string {
	switch {
	case m.Text != "":
		return m.Text
	case m.ImageURL != "":
		return "[image] " + m.ImageURL
	case m.AudioURL != "":
		return "[audio] " + m.AudioURL
	}
	return ""
}

// answerPayload is the raw per-type answer value for the wire.
func answerPayload(q *quiz.Question, ans quiz.Answer) any {
	switch q.Type {
	case quiz.TypeSingleChoice:
		return ans.Option
	case quiz.TypeMultiChoice:
		return ans.Options
	case quiz.TypeShortText:
		return ans.Text
	case quiz.TypeOrdering:
		return ans.Order
	case quiz.TypeFillBlank:
		return ans.Blanks
	}
	return nil
}

func encodeAnswer(q *quiz.Question, ans quiz.Answer) string {
	b, err := json.Marshal(answerPayload(q, ans))
	if err != nil {
		return ""
	}
	return string(b)
}
