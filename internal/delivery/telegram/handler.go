package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/longtail-keywords/internal/domain/entity"
	"github.com/yourusername/longtail-keywords/internal/domain/repository"
	"github.com/yourusername/longtail-keywords/internal/lib/sl"
	"github.com/yourusername/longtail-keywords/internal/usecase"
)

// botAPI tgbotapi.BotAPI ning handler ishlatadigan qismi
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// BotHandler Telegram bot handler
type BotHandler struct {
	bot      botAPI
	username string

	keywordUseCase usecase.KeywordUseCase
	promptUseCase  usecase.PromptUseCase
	catalogUseCase usecase.CatalogUseCase
	sessionRepo    repository.SessionRepository

	allowed func(chatID int64) bool
	log     *slog.Logger

	runnersMu sync.Mutex
	runners   map[int64]*usecase.KeywordRunner
}

// NewBotHandler yangi bot handler yaratish. allowed nil bo'lsa barcha chatlarga ruxsat.
func NewBotHandler(
	token string,
	allowed func(chatID int64) bool,
	keywordUseCase usecase.KeywordUseCase,
	promptUseCase usecase.PromptUseCase,
	catalogUseCase usecase.CatalogUseCase,
	sessionRepo repository.SessionRepository,
	log *slog.Logger,
) (*BotHandler, error) {
	if token == "" {
		return nil, &entity.Error{
			Kind:    entity.ErrConfig,
			Op:      "create bot",
			Message: "TELEGRAM_BOT_TOKEN 환경변수가 설정되지 않았습니다.",
		}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	h := newBotHandler(bot, allowed, keywordUseCase, promptUseCase, catalogUseCase, sessionRepo, log)
	h.username = bot.Self.UserName
	return h, nil
}

func newBotHandler(
	bot botAPI,
	allowed func(chatID int64) bool,
	keywordUseCase usecase.KeywordUseCase,
	promptUseCase usecase.PromptUseCase,
	catalogUseCase usecase.CatalogUseCase,
	sessionRepo repository.SessionRepository,
	log *slog.Logger,
) *BotHandler {
	if allowed == nil {
		allowed = func(int64) bool { return true }
	}
	return &BotHandler{
		bot:            bot,
		keywordUseCase: keywordUseCase,
		promptUseCase:  promptUseCase,
		catalogUseCase: catalogUseCase,
		sessionRepo:    sessionRepo,
		allowed:        allowed,
		log:            log.With(sl.Module("telegram")),
		runners:        make(map[int64]*usecase.KeywordRunner),
	}
}

// Start botni ishga tushirish. ctx bekor qilinguncha ishlaydi.
func (h *BotHandler) Start(ctx context.Context) error {
	h.log.Info("bot started", slog.String("username", h.username))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			h.log.Info("bot stopping")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.CallbackQuery != nil {
				go h.handleCallback(ctx, update.CallbackQuery)
				continue
			}
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}
	chatID := message.Chat.ID

	if !h.allowed(chatID) {
		h.log.Warn("chat not allowed", slog.Int64("chat_id", chatID))
		h.sendMessage(chatID, "⛔ 이 봇을 사용할 권한이 없습니다.")
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	// Oddiy matn kategoriya sifatida qabul qilinadi
	if text := strings.TrimSpace(message.Text); text != "" {
		h.runKeywords(ctx, chatID, text)
	}
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start":
		h.sendMessage(chatID, h.getWelcomeMessage())
	case "help":
		h.sendMessage(chatID, h.getHelpMessage())
	case "provider":
		h.handleProviderCommand(ctx, chatID, args)
	case "keywords":
		h.runKeywords(ctx, chatID, args)
	case "categories":
		h.handleCategoriesCommand(ctx, chatID)
	case "products":
		h.handleProductsCommand(ctx, chatID, args)
	case "random":
		h.handleRandomCommand(ctx, chatID)
	case "catalog":
		h.handleCatalogCommand(ctx, chatID)
	default:
		h.sendMessage(chatID, "알 수 없는 명령어입니다. /help 를 입력하세요.")
	}
}

// handleProviderCommand LLM providerni tanlash: /provider openai gpt-4o-mini
func (h *BotHandler) handleProviderCommand(ctx context.Context, chatID int64, args string) {
	session, err := h.sessionRepo.GetSession(ctx, chatID)
	if err != nil {
		h.sendError(chatID, err)
		return
	}

	fields := strings.Fields(args)
	if len(fields) == 0 {
		h.sendMessage(chatID, formatProviderStatus(session, h.keywordUseCase.Providers()))
		return
	}

	provider, err := entity.ParseProvider(fields[0])
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	if !containsProvider(h.keywordUseCase.Providers(), provider) {
		h.sendError(chatID, &entity.Error{
			Kind:    entity.ErrUnavailable,
			Op:      "select provider",
			Message: fmt.Sprintf("%s 제공자를 사용할 수 없습니다.", provider),
		})
		return
	}

	session, err = h.sessionRepo.UpdateSession(ctx, chatID, func(s *entity.Session) {
		s.Provider = provider
		if len(fields) > 1 {
			s.Model = fields[1]
		}
		if provider == entity.ProviderOpenAI && s.Model == "" {
			s.Model = entity.DefaultOpenAIModel
		}
	})
	if err != nil {
		h.sendError(chatID, err)
		return
	}

	text := fmt.Sprintf("✅ LLM 제공자: %s", provider)
	if provider == entity.ProviderOpenAI {
		text += fmt.Sprintf(" (%s)", session.Model)
	}
	h.sendMessage(chatID, text)
}

// handleCategoriesCommand kategoriyalar ro'yxati, har biri tugma
func (h *BotHandler) handleCategoriesCommand(ctx context.Context, chatID int64) {
	categories, err := h.catalogUseCase.Categories(ctx)
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	if len(categories) == 0 {
		h.sendMessage(chatID, "카탈로그가 비어 있습니다.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("📂 카테고리 %d개. 키워드를 생성할 카테고리를 선택하세요:", len(categories)))
	msg.ReplyMarkup = buildCategoryButtons(categories)
	h.send(msg)
}

// handleProductsCommand kategoriya mahsulotlari
func (h *BotHandler) handleProductsCommand(ctx context.Context, chatID int64, category string) {
	if category == "" {
		h.sendMessage(chatID, "사용법: /products <카테고리>")
		return
	}

	products, err := h.catalogUseCase.Products(ctx, category)
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	if len(products) == 0 {
		h.sendMessage(chatID, fmt.Sprintf("'%s' 카테고리에 상품이 없습니다.", category))
		return
	}

	h.sendLong(chatID, fmt.Sprintf("📦 %s (%d개)\n\n%s", category, len(products), bulletList(products)))
}

// handleRandomCommand tasodifiy mahsulot tanlash va sessiyaga yozish
func (h *BotHandler) handleRandomCommand(ctx context.Context, chatID int64) {
	pick, err := h.catalogUseCase.Random(ctx)
	if err != nil {
		h.sendError(chatID, err)
		return
	}

	if _, err := h.sessionRepo.UpdateSession(ctx, chatID, func(s *entity.Session) {
		s.Category = pick.Product
	}); err != nil {
		h.sendError(chatID, err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🎲 카테고리: %s\n상품: %s", pick.Category, pick.Product))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔑 이 상품으로 키워드 생성", callbackGenerate),
		),
	)
	h.send(msg)
}

// handleCatalogCommand katalog haqida ma'lumot
func (h *BotHandler) handleCatalogCommand(ctx context.Context, chatID int64) {
	info, err := h.catalogUseCase.Info(ctx)
	if err != nil {
		h.sendError(chatID, err)
		return
	}
	h.sendMessage(chatID, info)
}

// runKeywords chat runneri orqali kalit so'zlarni yaratish va natijani yuborish
func (h *BotHandler) runKeywords(ctx context.Context, chatID int64, category string) {
	session, err := h.sessionRepo.GetSession(ctx, chatID)
	if err != nil {
		h.sendError(chatID, err)
		return
	}

	events, err := h.runnerFor(chatID).Submit(ctx, requestFor(session, category))
	if err != nil {
		if errors.Is(err, entity.ErrBusy) {
			h.sendMessage(chatID, "⏳ "+entity.Describe(err))
			return
		}
		h.sendError(chatID, err)
		return
	}

	for ev := range events {
		switch ev.Kind {
		case usecase.EventProgress:
			if _, err := h.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
				h.log.Debug("failed to send chat action", sl.Err(err))
			}
			h.sendMessage(chatID, "⏳ "+ev.Message)
		case usecase.EventError:
			h.sendError(chatID, ev.Err)
		case usecase.EventSuccess:
			h.deliverKeywords(ctx, chatID, ev.Result)
		}
	}
}

func (h *BotHandler) deliverKeywords(ctx context.Context, chatID int64, result *entity.KeywordResult) {
	if len(result.Keywords) == 0 {
		h.sendMessage(chatID, "생성된 키워드가 없습니다. 다른 카테고리로 다시 시도해주세요.")
		return
	}

	if _, err := h.sessionRepo.UpdateSession(ctx, chatID, func(s *entity.Session) {
		s.Category = result.Category
		s.ResultID = result.ID
		s.Keywords = result.Keywords
	}); err != nil {
		h.sendError(chatID, err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatKeywords(result))
	msg.ReplyMarkup = buildKeywordButtons(result.ID, result.Keywords)
	h.send(msg)
}

// handleCallback inline tugmalar
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	// Callback ga javob (spinnerni to'xtatish)
	if _, err := h.bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		h.log.Warn("failed to answer callback", sl.Err(err))
	}

	if !h.allowed(chatID) {
		return
	}

	cb, ok := parseCallback(cq.Data)
	if !ok {
		h.log.Debug("unknown callback", slog.String("data", cq.Data))
		return
	}

	switch cb.action {
	case actionKeyword:
		h.handleKeywordSelected(ctx, chatID, cb.tag, cb.index)
	case actionCategory:
		categories, err := h.catalogUseCase.Categories(ctx)
		if err != nil {
			h.sendError(chatID, err)
			return
		}
		if cb.index >= len(categories) {
			h.sendMessage(chatID, "카테고리 목록이 변경되었습니다. /categories 를 다시 입력하세요.")
			return
		}
		h.runKeywords(ctx, chatID, categories[cb.index])
	case actionGenerate:
		session, err := h.sessionRepo.GetSession(ctx, chatID)
		if err != nil {
			h.sendError(chatID, err)
			return
		}
		h.runKeywords(ctx, chatID, session.Category)
	}
}

// handleKeywordSelected tanlangan kalit so'z uchun promptni yuborish.
// Tugma sessiyadagi oxirgi natijaga tegishli bo'lmasa, ro'yxat eskirgan hisoblanadi.
func (h *BotHandler) handleKeywordSelected(ctx context.Context, chatID int64, tag string, index int) {
	session, err := h.sessionRepo.GetSession(ctx, chatID)
	if err != nil {
		h.sendError(chatID, err)
		return
	}

	keyword, ok := session.Keyword(index)
	if !ok || tag != resultTag(session.ResultID) {
		h.log.Debug("stale keyword button", slog.Int64("chat_id", chatID), slog.String("tag", tag))
		h.sendMessage(chatID, "키워드 목록이 만료되었습니다. 키워드를 다시 생성해주세요.")
		return
	}

	prompt, err := h.promptUseCase.Materialize(ctx, keyword)
	if err != nil {
		h.sendError(chatID, err)
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("📝 선택한 키워드: %s", keyword))
	h.sendLong(chatID, prompt)
}

func (h *BotHandler) runnerFor(chatID int64) *usecase.KeywordRunner {
	h.runnersMu.Lock()
	defer h.runnersMu.Unlock()

	runner, ok := h.runners[chatID]
	if !ok {
		runner = usecase.NewKeywordRunner(h.keywordUseCase, h.log)
		h.runners[chatID] = runner
	}
	return runner
}

// sendError xatolikni sarlavha va matn bilan yuborish
func (h *BotHandler) sendError(chatID int64, err error) {
	if !errors.Is(err, entity.ErrCanceled) {
		h.log.Warn("request failed", slog.Int64("chat_id", chatID), sl.Err(err))
	}
	h.sendMessage(chatID, fmt.Sprintf("❌ %s\n%s", entity.Title(err), entity.Describe(err)))
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

// sendLong uzun matnni bo'laklarga bo'lib yuborish
func (h *BotHandler) sendLong(chatID int64, text string) {
	for _, part := range splitMessage(text, maxMessageLength) {
		h.sendMessage(chatID, part)
	}
}

func (h *BotHandler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.log.Error("failed to send message", sl.Err(err))
	}
}

// getWelcomeMessage salom xabari
func (h *BotHandler) getWelcomeMessage() string {
	name := "롱테일 키워드 생성 봇"
	if h.username != "" {
		name += " (@" + h.username + ")"
	}
	return `안녕하세요! 👋

쿠팡파트너스 포스팅용 ` + name + `입니다.

• 카테고리나 사용 상황을 입력하면 구매 의도가 담긴 키워드 10~15개를 만들어 드립니다.
• 키워드 버튼을 누르면 블로그 글 작성용 프롬프트가 완성됩니다.

예: 아기방 공기청정기
/help - 명령어 목록`
}

// getHelpMessage yordam xabari
func (h *BotHandler) getHelpMessage() string {
	return `🤖 명령어:

/keywords <카테고리> - 롱테일 키워드 생성 (일반 메시지도 카테고리로 처리)
/provider [gemini|openai] [모델] - LLM 제공자 확인/변경
/categories - 카탈로그 카테고리 목록
/products <카테고리> - 카테고리 상품 목록
/random - 무작위 상품 선택
/catalog - 카탈로그 정보
/help - 도움말

OpenAI 모델: ` + strings.Join(entity.OpenAIModels, ", ")
}
