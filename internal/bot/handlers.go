package bot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/example/vocabu/internal/export"
	"github.com/example/vocabu/internal/placement"
	"github.com/example/vocabu/internal/plan"
	"github.com/example/vocabu/internal/session"
	"github.com/example/vocabu/internal/srs"
	"github.com/example/vocabu/internal/words"
	"github.com/example/vocabu/pkg/models"
)

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	st := b.state(chatID)

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	if st.AwaitingImport {
		st.AwaitingImport = false
		b.send(chatID, b.importPackage(message.Text))
		return
	}

	if st.AwaitingWordList {
		st.AwaitingWordList = false
		st.UserWords = words.FromText(message.Text)
		if len(st.UserWords) == 0 {
			b.send(chatID, "Couldn't read any words from that. Use one word per line, e.g.\nairport - аэропорт\nor just paste a text to pull words from.")
			return
		}
		b.sendWithKeyboard(chatID,
			fmt.Sprintf("Got %d word(s) from your text.", len(st.UserWords)),
			[][]MenuButton{{{Text: "Build plan", CallbackData: "plan_build"}}})
		return
	}

	b.send(chatID, "Send /help to see what I can do.")
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.svc.SetUIStep("start")
		b.sendWithKeyboard(chatID,
			"Hi! I help you learn vocabulary for your domain with spaced repetition.\n"+
				"Pick a context, take a short placement quiz, get a daily quota and review your words every day.",
			b.mainMenuButtons())
	case "help":
		b.send(chatID, "/plan — set up a learning plan (context, quiz, quota)\n"+
			"/review — review today's words\n"+
			"/progress — today's progress and totals\n"+
			"/export — download your plan and history\n"+
			"/import — restore from a JSON export\n"+
			"/reset — erase everything and start over")
	case "plan":
		b.startPlanFlow(chatID)
	case "quiz":
		b.startQuiz(chatID)
	case "review":
		b.startReview(chatID)
	case "progress":
		b.showProgress(chatID)
	case "export":
		b.sendWithKeyboard(chatID, "Pick a format:", [][]MenuButton{
			{
				{Text: "JSON", CallbackData: "export_json"},
				{Text: "CSV", CallbackData: "export_csv"},
				{Text: "XLSX", CallbackData: "export_xlsx"},
			},
			{{Text: "Import from JSON", CallbackData: "import_start"}},
		})
	case "import":
		b.state(chatID).AwaitingImport = true
		b.send(chatID, "Paste the JSON export package I gave you earlier.")
	case "reset":
		b.sendWithKeyboard(chatID,
			"This erases your plan, all card progress and the review history. Sure?",
			[][]MenuButton{{
				{Text: "Yes, erase everything", CallbackData: "reset_confirm"},
				{Text: "Cancel", CallbackData: "main_menu"},
			}})
	default:
		b.send(chatID, "Unknown command. Send /help for the list.")
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	st := b.state(chatID)
	data := callback.Data

	// acknowledge the button press
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		logrus.WithError(err).Debug("failed to answer callback")
	}

	switch {
	case data == "main_menu":
		b.sendWithKeyboard(chatID, "What next?", b.mainMenuButtons())
	case data == "start_review":
		b.startReview(chatID)
	case data == "show_progress":
		b.showProgress(chatID)
	case data == "plan_setup":
		b.startPlanFlow(chatID)
	case strings.HasPrefix(data, "plan_ctx_"):
		st.Goals.Context = strings.TrimPrefix(data, "plan_ctx_")
		b.sendWithKeyboard(chatID, "Sentence style?", [][]MenuButton{{
			{Text: "Simple", CallbackData: "plan_style_" + models.StyleSimple},
			{Text: "Professional", CallbackData: "plan_style_" + models.StyleProfessional},
			{Text: "Academic", CallbackData: "plan_style_" + models.StyleAcademic},
		}})
	case strings.HasPrefix(data, "plan_style_"):
		st.Goals.Style = strings.TrimPrefix(data, "plan_style_")
		b.sendWithKeyboard(chatID, "Learning horizon?", [][]MenuButton{{
			{Text: "30 days", CallbackData: "plan_horizon_30"},
			{Text: "60 days", CallbackData: "plan_horizon_60"},
			{Text: "90 days", CallbackData: "plan_horizon_90"},
		}})
	case strings.HasPrefix(data, "plan_horizon_"):
		if n, err := strconv.Atoi(strings.TrimPrefix(data, "plan_horizon_")); err == nil {
			st.Goals.Horizon = n
		}
		if st.Goals.Context == models.ContextSenior {
			b.sendWithKeyboard(chatID, "Comfort mode (gentler pace, shorter quiz)?", [][]MenuButton{{
				{Text: "Yes", CallbackData: "plan_comfort_on"},
				{Text: "No", CallbackData: "plan_comfort_off"},
			}})
			return
		}
		b.offerQuiz(chatID)
	case data == "plan_comfort_on":
		st.Goals.ComfortMode = true
		b.offerQuiz(chatID)
	case data == "plan_comfort_off":
		st.Goals.ComfortMode = false
		b.offerQuiz(chatID)
	case data == "quiz_start":
		b.startQuiz(chatID)
	case data == "quiz_skip":
		st.Quiz = nil
		st.Placement = nil
		b.offerWords(chatID)
	case strings.HasPrefix(data, "quiz_ans_"):
		b.handleQuizAnswer(chatID, strings.TrimPrefix(data, "quiz_ans_"))
	case data == "plan_words":
		st.AwaitingWordList = true
		b.send(chatID, "Send your word list, one entry per line:\n"+
			"term - translation\nterm: translation\nor just the term.\n\n"+
			"You can also paste any text and I'll pull the words out of it.")
	case data == "import_start":
		st.AwaitingImport = true
		b.send(chatID, "Paste the JSON export package I gave you earlier.")
	case data == "plan_build":
		b.buildPlan(chatID)
	case strings.HasPrefix(data, "grade_"):
		b.handleGrade(chatID, strings.TrimPrefix(data, "grade_"))
	case data == "review_stop":
		st.Review = nil
		b.showProgress(chatID)
	case data == "export_json":
		var buf bytes.Buffer
		if err := b.exporter.WriteJSON(&buf); err != nil {
			b.send(chatID, "Export failed: "+err.Error())
			return
		}
		b.sendDocument(chatID, export.FileName("json"), buf.Bytes())
	case data == "export_csv":
		var planBuf, histBuf bytes.Buffer
		if err := b.exporter.WritePlanCSV(&planBuf); err != nil {
			b.send(chatID, "Export failed: "+err.Error())
			return
		}
		b.sendDocument(chatID, "vocabu_plan.csv", planBuf.Bytes())
		if err := b.exporter.WriteHistoryCSV(&histBuf); err == nil {
			b.sendDocument(chatID, "vocabu_history.csv", histBuf.Bytes())
		}
	case data == "export_xlsx":
		path := filepath.Join(os.TempDir(), "vocabu_export.xlsx")
		if err := b.exporter.WriteXLSX(path); err != nil {
			b.send(chatID, "Export failed: "+err.Error())
			return
		}
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
		if _, err := b.api.Send(doc); err != nil {
			logrus.WithError(err).Warn("failed to send document")
		}
		os.Remove(path)
	case data == "reset_confirm":
		if err := b.svc.Reset(); err != nil {
			b.send(chatID, "Reset failed: "+err.Error())
			return
		}
		delete(b.chats, chatID)
		b.send(chatID, "Everything cleared. Send /plan to start over.")
	}
}

func (b *Bot) mainMenuButtons() [][]MenuButton {
	return [][]MenuButton{
		{{Text: "Set up plan", CallbackData: "plan_setup"}},
		{{Text: "Review words", CallbackData: "start_review"}, {Text: "Progress", CallbackData: "show_progress"}},
	}
}

func (b *Bot) startPlanFlow(chatID int64) {
	b.svc.SetUIStep("plan")
	b.sendWithKeyboard(chatID, "Pick your context:", [][]MenuButton{
		{{Text: "Law", CallbackData: "plan_ctx_" + models.ContextLaw},
			{Text: "Travel", CallbackData: "plan_ctx_" + models.ContextTravel}},
		{{Text: "IT", CallbackData: "plan_ctx_" + models.ContextIT},
			{Text: "60+", CallbackData: "plan_ctx_" + models.ContextSenior}},
	})
}

func (b *Bot) offerQuiz(chatID int64) {
	b.sendWithKeyboard(chatID,
		"A short placement quiz tunes your daily quota. Answer intuitively, it's not an exam.",
		[][]MenuButton{{
			{Text: "Start quiz", CallbackData: "quiz_start"},
			{Text: "Skip", CallbackData: "quiz_skip"},
		}})
}

func (b *Bot) startQuiz(chatID int64) {
	st := b.state(chatID)
	st.Quiz = placement.NewQuiz(st.Goals.Context, st.Goals.ComfortMode, b.rnd)
	st.Placement = nil
	b.svc.SetUIStep("quiz")
	b.sendQuizQuestion(chatID)
}

func (b *Bot) sendQuizQuestion(chatID int64) {
	st := b.state(chatID)
	question, ok := st.Quiz.Current()
	if !ok {
		return
	}
	var rows [][]MenuButton
	for i, opt := range question.Options {
		rows = append(rows, []MenuButton{{Text: opt, CallbackData: "quiz_ans_" + strconv.Itoa(i)}})
	}
	text := fmt.Sprintf("Question %d/%d\n\nWhat does “%s” mean?",
		st.Quiz.Position(), len(st.Quiz.Question), question.Term)
	b.sendWithKeyboard(chatID, text, rows)
}

func (b *Bot) handleQuizAnswer(chatID int64, raw string) {
	st := b.state(chatID)
	if st.Quiz == nil || st.Quiz.Done() {
		return
	}
	question, _ := st.Quiz.Current()
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= len(question.Options) {
		return
	}
	st.Quiz.Answer(question.Options[idx])

	if !st.Quiz.Done() {
		b.sendQuizQuestion(chatID)
		return
	}

	res := st.Quiz.Result()
	st.Placement = &res
	b.send(chatID, fmt.Sprintf("Quiz done!\nLevel: %s\nScore: %d%%\nCorrect: %d/%d\nConfidence: %.0f%%",
		res.Level, res.Score, res.Correct, res.Total, res.Confidence*100))
	b.offerWords(chatID)
}

func (b *Bot) offerWords(chatID int64) {
	b.sendWithKeyboard(chatID,
		"Want to add your own words to the plan?",
		[][]MenuButton{{
			{Text: "Add my words", CallbackData: "plan_words"},
			{Text: "Build plan", CallbackData: "plan_build"},
		}})
}

func (b *Bot) buildPlan(chatID int64) {
	st := b.state(chatID)

	var placementWords []models.VocabItem
	if st.Quiz != nil {
		placementWords = st.Quiz.Words()
	}

	p, ok := plan.Build(st.Goals, st.Placement, placementWords, st.UserWords)
	if !ok {
		b.sendWithKeyboard(chatID,
			"Nothing to build a plan from yet — take the quiz or add some words first.",
			[][]MenuButton{{
				{Text: "Start quiz", CallbackData: "quiz_start"},
				{Text: "Add my words", CallbackData: "plan_words"},
			}})
		return
	}

	res := b.svc.ApplyPlan(p)
	b.svc.SetUIStep("plan")
	comfort := ""
	if p.ComfortMode {
		comfort = " · comfort mode"
	}
	b.sendWithKeyboard(chatID, fmt.Sprintf(
		"Plan ready%s!\nContext: %s · %d days\nQuota: %d/day · %d/week · %d total\nPool: %d words (%d new)",
		comfort, p.Context, p.Horizon,
		p.Recommendation.PerDay, p.Recommendation.PerWeek, p.Recommendation.Total,
		len(res.PoolOrder), res.Seeded),
		[][]MenuButton{{{Text: "Review now", CallbackData: "start_review"}}})
}

func (b *Bot) startReview(chatID int64) {
	st := b.state(chatID)

	review, err := b.svc.StartReview()
	if err == session.ErrNoPlan {
		b.sendWithKeyboard(chatID, "No plan yet — set one up first.",
			[][]MenuButton{{{Text: "Set up plan", CallbackData: "plan_setup"}}})
		return
	}
	if err != nil {
		b.send(chatID, "Couldn't start the session: "+err.Error())
		return
	}
	if review.Len() == 0 {
		b.send(chatID, "Nothing due today. Great time to rest 🙂")
		return
	}

	st.Review = review
	b.svc.SetUIStep("review")
	if review.Fallback() {
		b.send(chatID, "Nothing is due today, so here are a few upcoming words instead.")
	}
	b.sendCard(chatID)
}

func (b *Bot) sendCard(chatID int64) {
	st := b.state(chatID)
	word, ok := st.Review.Current()
	if !ok {
		return
	}

	text := fmt.Sprintf("Card %d/%d\n\n%s", st.Review.Position(), st.Review.Len(), word.Term)
	if word.Translation != "" {
		text += "\nHint: " + mask(word.Translation)
	}
	text += "\n\nRecall the translation, then grade yourself."

	b.sendWithKeyboard(chatID, text, [][]MenuButton{
		{
			{Text: "Again", CallbackData: "grade_again"},
			{Text: "Hard", CallbackData: "grade_hard"},
			{Text: "Good", CallbackData: "grade_good"},
			{Text: "Easy", CallbackData: "grade_easy"},
		},
		{{Text: "Finish", CallbackData: "review_stop"}},
	})
}

func (b *Bot) handleGrade(chatID int64, raw string) {
	st := b.state(chatID)
	if st.Review == nil {
		b.send(chatID, "No active session. Send /review to start one.")
		return
	}

	grade, err := srs.ParseGrade(raw)
	if err != nil {
		b.send(chatID, "Unknown grade.")
		return
	}

	fb, err := st.Review.Grade(grade)
	if err != nil {
		b.send(chatID, "Couldn't grade that card: "+err.Error())
		return
	}

	var when string
	if fb.FirstTouchHint > 0 {
		when = "next encounter in ~" + formatDelay(fb.FirstTouchHint)
	} else {
		when = fmt.Sprintf("next review in %d day(s), on %s", fb.NewIntervalDays, fb.NewDue)
	}
	b.send(chatID, fmt.Sprintf("Noted — %s.", when))

	if st.Review.Done() {
		done := st.Review
		st.Review = nil
		snap := b.svc.Snapshot()
		b.sendWithKeyboard(chatID, fmt.Sprintf(
			"Session finished: %d card(s).\nToday: %d/%d words.",
			done.Len(), snap.Done, snap.Target),
			b.mainMenuButtons())
		return
	}
	b.sendCard(chatID)
}

func (b *Bot) showProgress(chatID int64) {
	snap := b.svc.Snapshot()
	b.svc.SetUIStep("progress")
	b.sendWithKeyboard(chatID, fmt.Sprintf(
		"Today: %d/%d words\nDue now: %d\nReviews today: %d\nReviews total: %d",
		snap.Done, snap.Target, snap.DueCount, snap.TodayReviewCount, snap.TotalReviewCount),
		[][]MenuButton{{{Text: "Review words", CallbackData: "start_review"}}})
}

// importPackage restores a pasted JSON export package and reconciles the
// restored plan back into the card pool. Returns the reply text.
func (b *Bot) importPackage(raw string) string {
	pkg, err := b.exporter.Import(strings.NewReader(raw))
	if err != nil {
		return "Couldn't read that export: " + err.Error()
	}
	b.svc.Resync()

	var parts []string
	if pkg.Plan != nil {
		parts = append(parts, "plan")
	}
	if len(pkg.Cards) > 0 {
		parts = append(parts, fmt.Sprintf("%d card(s)", len(pkg.Cards)))
	}
	if pkg.Progress != nil {
		parts = append(parts, "today's progress")
	}
	if len(pkg.History) > 0 {
		parts = append(parts, fmt.Sprintf("%d review(s) of history", len(pkg.History)))
	}
	if len(parts) == 0 {
		return "The package was valid but carried no data."
	}
	return "Restored " + strings.Join(parts, ", ") + ". Send /review to continue."
}

func (b *Bot) sendDocument(chatID int64, name string, data []byte) {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	if _, err := b.api.Send(doc); err != nil {
		logrus.WithError(err).Warn("failed to send document")
	}
}

func formatDelay(d time.Duration) string {
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%d min", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d h", int(d.Hours()))
	default:
		return fmt.Sprintf("%d day(s)", int(d.Hours()/24))
	}
}
