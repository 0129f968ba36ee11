package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"

	"belote/internal/app"
	"belote/internal/bot"
	"belote/internal/config"
	"belote/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// seatPositions maps seat index to table position, in rotation order. Seat 0
// is South, the seat the first human takes.
var seatPositions = domain.Positions()

// betweenRoundDelayTicks spaces out the automatic deal of the next round so
// clients can show the round summary.
const betweenRoundDelayTicks = 3

// MatchState holds the authoritative runtime state for the Nakama match
// handler. Bot-controlled seats are exactly the seats with an agent in Bots:
// pool identities get one when auto-filled, and a leaving human's seat gets
// one so the game keeps moving.
type MatchState struct {
	Seats     [4]string `json:"seats"` // user IDs by seat index, "" means empty
	OwnerSeat int       `json:"owner_seat"`
	Tick      int64     `json:"tick"`

	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"`
	Settings  domain.Settings             `json:"-"`
	Bots      map[string]*bot.Agent       `json:"-"`

	BotsEnabled          bool  `json:"bots_enabled"`
	BotMinDelay          int   `json:"bot_min_delay"`
	BotMaxDelay          int   `json:"bot_max_delay"`
	BotAutoFillDelay     int   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64 `json:"bot_wait_until"`
	LastSinglePlayerTick int64 `json:"last_single_player_tick"`
	NextRoundTick        int64 `json:"next_round_tick"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !ms.isBotSeat(seat) {
			count++
		}
	}
	return count
}

// isBotSeat reports whether the given user id is played by an agent, either
// a pool identity or a taken-over human seat.
func (ms *MatchState) isBotSeat(userId string) bool {
	if bot.IsBot(userId) {
		return true
	}
	_, ok := ms.Bots[userId]
	return ok
}

// seatIndexOf returns the seat index for a user id, or -1.
func (ms *MatchState) seatIndexOf(userId string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userId {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a connected human.
func (ms *MatchState) isHumanSeat(seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(ms.Seats) {
		return false
	}
	userId := ms.Seats[seatIndex]
	return userId != "" && !ms.isBotSeat(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or
// -1 if none exist.
func (ms *MatchState) findFirstHumanSeat() int {
	for i := range ms.Seats {
		if ms.isHumanSeat(i) {
			return i
		}
	}
	return -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	state := &MatchState{
		OwnerSeat: -1,
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		Bots:      make(map[string]*bot.Agent),
		Settings: domain.Settings{
			TargetScore: cfg.TargetScore,
			TrumpSuit:   domain.Suit(cfg.TrumpSuit),
			AILevel:     domain.AILevel(cfg.BotLevel),
		},
		BotsEnabled:      true,
		BotMinDelay:      1,
		BotMaxDelay:      cfg.BotPlayDelayTicks + 1,
		BotAutoFillDelay: cfg.BotAutoFillDelaySeconds,
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["belote_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["belote_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["belote_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["belote_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotAutoFillDelay = i
		}
	}
	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay
	}

	tickRate := 1
	return state, tickRate, mh.labelString(state, logger)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join when there is an empty seat, or a bot seat to reclaim
	// before the game starts.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if matchState.isBotSeat(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserId := range matchState.Seats {
				if matchState.isBotSeat(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	// Owner is always a human seat.
	if !matchState.isHumanSeat(matchState.OwnerSeat) {
		matchState.OwnerSeat = matchState.findFirstHumanSeat()
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match. A seat that
// leaves mid-game is handed to a bot agent so the table keeps playing.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		seatIndex := matchState.seatIndexOf(p.GetUserId())
		if seatIndex < 0 {
			continue
		}

		if matchState.Game != nil && !matchState.Game.IsCompleted() {
			// Keep the seat occupied by the same player identity, now driven
			// by an agent.
			player := matchState.Game.Player(seatPositions[seatIndex])
			brain, err := bot.NewBrain(matchState.Settings.AILevel, nil)
			if err == nil {
				matchState.Bots[p.GetUserId()] = bot.NewAgent(player, brain)
				logger.Info("MatchLeave: Seat %d handed to a bot after %s left.", seatIndex, p.GetUserId())
			} else {
				logger.Error("MatchLeave: Could not create takeover agent: %v", err)
				matchState.Seats[seatIndex] = ""
			}
		} else {
			matchState.Seats[seatIndex] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seatIndex)
		}
	}

	if matchState.findFirstHumanSeat() == -1 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	if !matchState.isHumanSeat(matchState.OwnerSeat) {
		matchState.OwnerSeat = matchState.findFirstHumanSeat()
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case domain.OpCodeStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case domain.OpCodePlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		case domain.OpCodeNewGame:
			mh.handleNewGame(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}
	mh.processNextRound(ctx, matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby with bots when a single human has been waiting.
	if state.Game == nil {
		humanCount := state.GetHumanPlayerCount()
		if humanCount == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				if mh.fillWithBots(state, logger) {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastMatchState(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// Bot turns in-game.
	if state.Game.Phase() != domain.PhasePlaying {
		state.BotWaitUntil = 0
		return
	}

	currentPos := state.Game.CurrentPlayer()
	currentUserID := state.Game.Player(currentPos).ID
	agent, isBot := state.Bots[currentUserID]
	if !isBot {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (%s) will act at tick %d", currentUserID, currentPos, state.BotWaitUntil)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	card, err := agent.Play(state.Game)
	if err != nil {
		logger.Error("processBots: Bot %s failed to choose a card: %v", currentUserID, err)
		return
	}

	events, err := state.App.PlayCard(state.Game, currentUserID, card)
	if err != nil {
		logger.Error("processBots: Bot %s played an unacceptable card %s: %v", currentUserID, card, err)
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// processNextRound deals the next round automatically once the between-round
// pause has elapsed.
func (mh *matchHandler) processNextRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil || state.NextRoundTick == 0 {
		return
	}
	if state.Game.IsCompleted() || state.Game.Phase() != domain.PhaseDealing {
		state.NextRoundTick = 0
		return
	}
	if state.Tick < state.NextRoundTick {
		return
	}
	state.NextRoundTick = 0

	events, err := state.App.StartRound(state.Game)
	if err != nil {
		logger.Error("processNextRound: Failed to start round: %v", err)
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// fillWithBots seats a pool identity with an agent on every empty seat.
func (mh *matchHandler) fillWithBots(state *MatchState, logger runtime.Logger) bool {
	added := false
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		identity := bot.GetBotIdentity(i)
		botID := identity.UserID

		level := state.Settings.AILevel
		if identity.Difficulty != "" {
			level = domain.AILevel(identity.Difficulty)
		}
		brain, err := bot.NewBrain(level, nil)
		if err != nil {
			logger.Error("fillWithBots: Failed to create brain for %s: %v", botID, err)
			continue
		}

		state.Seats[i] = botID
		player := domain.NewAIPlayer(botID, identity.DisplayName, seatPositions[i], level)
		state.Bots[botID] = bot.NewAgent(player, brain)
		logger.Info("fillWithBots: Added bot %s (%s) to seat %d", identity.Username, botID, i)
		added = true
	}
	return added
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatIndexOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d)", senderID, senderSeat, state.OwnerSeat)

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start the game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.Game != nil {
		logger.Warn("StartGame: Game already started.")
		return
	}

	var request StartGameRequest
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("StartGame: Invalid StartGameRequest from %s: %v", senderID, err)
			return
		}
	}
	mh.applySettings(state, request)

	// The owner starting a short-handed lobby fills the rest with bots.
	if state.GetOpenSeatsCount() > 0 {
		if !state.BotsEnabled {
			logger.Warn("StartGame: Cannot start with open seats and bots disabled.")
			return
		}
		mh.fillWithBots(state, logger)
		mh.broadcastMatchState(state, dispatcher, logger)
	}

	game, err := mh.buildGame(ctx, state)
	if err != nil {
		logger.Error("StartGame: Failed to build game: %v", err)
		return
	}
	state.Game = game

	events, err := state.App.StartRound(game)
	if err != nil {
		logger.Error("StartGame: Failed to start round: %v", err)
		state.Game = nil
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)

	logger.Info("StartGame: Game started, trump %s, target %d.", game.Settings.TrumpSuit, game.Settings.TargetScore)
}

// applySettings honors valid overrides from the owner's start request.
func (mh *matchHandler) applySettings(state *MatchState, request StartGameRequest) {
	if request.TargetScore > 0 {
		state.Settings.TargetScore = request.TargetScore
	}
	switch domain.Suit(request.TrumpSuit) {
	case domain.Clubs, domain.Diamonds, domain.Hearts, domain.Spades:
		state.Settings.TrumpSuit = domain.Suit(request.TrumpSuit)
	}
	switch domain.AILevel(request.BotLevel) {
	case domain.LevelApprentice, domain.LevelSeasoned, domain.LevelExpert, domain.LevelChampion:
		state.Settings.AILevel = domain.AILevel(request.BotLevel)
	}
}

// buildGame creates the domain game from the current seat layout.
func (mh *matchHandler) buildGame(ctx context.Context, state *MatchState) (*domain.Game, error) {
	players := make(map[domain.Position]*domain.Player, len(state.Seats))
	for i, userID := range state.Seats {
		pos := seatPositions[i]
		if agent, isBot := state.Bots[userID]; isBot {
			players[pos] = domain.NewAIPlayer(userID, agent.Name, pos, state.Settings.AILevel)
			// Rebind the agent to the game's player instance.
			brain := agent.Strategy
			state.Bots[userID] = bot.NewAgent(players[pos], brain)
			continue
		}
		name := userID
		if p, ok := state.Presences[userID]; ok {
			name = p.GetUsername()
		}
		players[pos] = domain.NewHumanPlayer(userID, name, pos)
	}

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	return domain.NewGame(matchID, state.Settings, players), nil
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	if state.Game == nil {
		logger.Warn("handlePlayCard: Game not started.")
		return
	}

	var request PlayCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlayCard: Failed to unmarshal PlayCardRequest: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed play request")
		return
	}

	events, err := state.App.PlayCard(state.Game, senderID, request.Card)
	if err != nil {
		logger.Warn("handlePlayCard: User %s failed to play %s: %v", senderID, request.Card, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// handleNewGame restarts a finished game with the same table and settings.
func (mh *matchHandler) handleNewGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.seatIndexOf(senderID) != state.OwnerSeat {
		logger.Warn("NewGame: User %s is not owner.", senderID)
		return
	}
	if state.Game == nil || !state.Game.IsCompleted() {
		logger.Warn("NewGame: No finished game to restart.")
		return
	}

	state.Game.Reset()
	events, err := state.App.StartRound(state.Game)
	if err != nil {
		logger.Error("NewGame: Failed to start round: %v", err)
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// dispatchEvents forwards app events to clients and keeps the agents and the
// between-round scheduler informed.
func (mh *matchHandler) dispatchEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		mh.notifyAgents(state, ev)
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// notifyAgents feeds table events into every bot strategy.
func (mh *matchHandler) notifyAgents(state *MatchState, ev app.Event) {
	switch payload := ev.Payload.(type) {
	case app.CardPlayedPayload:
		for _, agent := range state.Bots {
			agent.OnGameEvent(bot.CardObserved{Position: payload.Position, Card: payload.Card})
		}
	case app.RoundStartedPayload:
		for _, agent := range state.Bots {
			agent.OnGameEvent(bot.RoundReset{})
		}
	}
}

// broadcastEvent converts one app event to its wire message and dispatches
// it.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64

	switch ev.Kind {
	case app.EventRoundStarted:
		opCode = domain.OpCodeRoundStarted
	case app.EventHandDealt:
		opCode = domain.OpCodeHandDealt
	case app.EventCardPlayed:
		opCode = domain.OpCodeCardPlayed
	case app.EventBeloteAnnounced:
		opCode = domain.OpCodeBeloteCalled
	case app.EventTrickCompleted:
		opCode = domain.OpCodeTrickCompleted
	case app.EventRoundCompleted:
		opCode = domain.OpCodeRoundCompleted
		// Schedule the next deal; the scheduler clears itself if the game
		// is over.
		state.NextRoundTick = state.Tick + betweenRoundDelayTicks
	case app.EventGameEnded:
		opCode = domain.OpCodeGameEnded
		mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// The intended recipients are all offline or bots: nothing to send,
		// and broadcasting a private payload would leak a hand.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// sendError sends a GameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(GameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameErrorEvent: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(domain.OpCodeGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := MatchStateSnapshot{}
	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}
		pos := seatPositions[i]

		displayName := userId
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		} else if agent, isBot := state.Bots[userId]; isBot {
			displayName = agent.Name
		}

		cardsRemaining := 0
		if state.Game != nil {
			if p := state.Game.Player(pos); p != nil {
				cardsRemaining = p.Hand.Size()
			}
		}

		snapshot.Players = append(snapshot.Players, PlayerState{
			UserID:         userId,
			Position:       pos,
			DisplayName:    displayName,
			IsOwner:        i == state.OwnerSeat,
			IsBot:          state.isBotSeat(userId),
			CardsRemaining: cardsRemaining,
		})
	}
	if state.OwnerSeat >= 0 {
		snapshot.Owner = seatPositions[state.OwnerSeat]
	}
	if state.Game != nil {
		snapshot.Phase = state.Game.Phase()
		snapshot.ScoreNS = state.Game.TeamScore(domain.TeamNS).GameScore
		snapshot.ScoreEW = state.Game.TeamScore(domain.TeamEW).GameScore
		snapshot.Turn = state.Game.CurrentPlayer()
		snapshot.Trump = state.Game.Settings.TrumpSuit
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal match state snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(domain.OpCodeMatchState, bytes, nil, nil, true)
}

func (mh *matchHandler) labelString(state *MatchState, logger runtime.Logger) string {
	matchState := "lobby"
	if state.Game != nil {
		matchState = "playing"
		if state.Game.IsCompleted() {
			matchState = "lobby"
		}
	}

	label := MatchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  "belote",
		State: matchState,
	}
	labelBytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("labelString: Failed to marshal: %v", err)
		return ""
	}
	return string(labelBytes)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if err := dispatcher.MatchLabelUpdate(mh.labelString(state, logger)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
