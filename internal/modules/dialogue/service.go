// README: Dialogue service orchestrates a turn: pending-answer resolution,
// entity extraction, routing, slot gating, mode execution, pricing
// enrichment, interaction recording, and normalization — in that order.
package dialogue

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"caddie/internal/ai"
	"caddie/internal/modules/catalog"
	"caddie/internal/modules/pairing"
	"caddie/internal/modules/stores"
)

const (
	llmTimeout  = 10 * time.Second
	llmAttempts = 2
)

// StoreResolver turns an area hint into a labeled store list.
type StoreResolver interface {
	Resolve(ctx context.Context, areaHint string) stores.Resolution
}

// ProfileRecorder persists what a user talks about and serves their saved
// preferences back.
type ProfileRecorder interface {
	RecordInteraction(ctx context.Context, userID, entity, category, mode string) error
	PreferredIntensity(ctx context.Context, userID string) (string, error)
}

type Service struct {
	stores   StoreResolver
	gen      ai.TextGenerator
	profiles ProfileRecorder
	log      *zap.Logger
}

func NewService(resolver StoreResolver, gen ai.TextGenerator, profiles ProfileRecorder, log *zap.Logger) *Service {
	return &Service{stores: resolver, gen: gen, profiles: profiles, log: log}
}

// ProcessTurn runs one message through the engine and always returns a
// complete, normalized response. A panic anywhere inside the turn is
// swallowed into a generic failure answer; the caller never sees a broken
// payload.
func (s *Service) ProcessTurn(ctx context.Context, message string, sess *Session) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("turn panicked", zap.Any("panic", r), zap.String("user_id", sess.UserID))
			resp = Normalize(Response{
				Mode:     ModeInfo,
				Summary:  "Something went sideways on my end. Run that by me again.",
				NextStep: "Resend your last message.",
			}, ModeInfo)
		}
	}()

	var mode Mode
	if sess.Pending != nil {
		mode = applyPendingAnswer(message, sess)
	} else {
		extractEntities(message, sess)
		mode = Route(message, sess)
	}

	if clarify := gate(mode, message, sess); clarify != nil {
		sess.LastMode = mode
		sess.UpdatedAt = time.Now()
		return Normalize(*clarify, ModeClarify)
	}

	switch mode {
	case ModeHunt:
		resp = s.handleHunt(ctx, sess)
	case ModePairing:
		resp = s.handlePairing(ctx, sess)
	default:
		resp = s.handleInfo(ctx, message, sess)
	}

	if resp.Mode == ModeHunt && sess.Hunt.TargetKind == "bottle" && sess.Hunt.Target != "" {
		for _, p := range catalog.PricingItems(sess.Hunt.Target) {
			resp.ItemList = append(resp.ItemList, Item{Label: p.Label, Value: p.Value})
		}
	}

	s.recordInteraction(ctx, sess, mode)

	sess.LastMode = mode
	sess.UpdatedAt = time.Now()
	return Normalize(resp, mode)
}

func extractEntities(message string, sess *Session) {
	if name, ok := catalog.MatchName(message); ok {
		sess.RememberEntity(CategoryBourbon, name)
	}
	if cigar, ok := pairing.MatchCigar(message); ok {
		sess.RememberEntity(CategoryCigar, cigar)
	}
}

func (s *Service) handleHunt(ctx context.Context, sess *Session) Response {
	res := s.stores.Resolve(ctx, sess.Hunt.Area)

	stops := make([]Stop, 0, len(res.Records))
	for _, r := range res.Records {
		notes := r.Notes
		if r.Phone != "" {
			notes = r.Phone + ". " + notes
		}
		stops = append(stops, Stop{Name: r.Name, Address: r.Address, Notes: notes, Lat: r.Lat, Lng: r.Lng})
	}

	resp := Response{Mode: ModeHunt}
	if sess.Hunt.TargetKind == "bottle" && sess.Hunt.Target != "" {
		resp.Summary = fmt.Sprintf("Here's how to hunt %s around %s.", sess.Hunt.Target, res.Label)
		resp.KeyPoints = []string{
			"Specific bottles usually move through lists, raffles, or relationships.",
			"Ask about drop timing and qualification rules.",
		}
		resp.ItemList = []Item{
			{Label: "Target", Value: sess.Hunt.Target},
			{Label: "Method", Value: "Lists, raffles, relationship"},
		}
		resp.TargetBottles = []string{sess.Hunt.Target}
	} else {
		resp.Summary = fmt.Sprintf("Here are the best starting moves to hunt allocations around %s.", res.Label)
		resp.KeyPoints = []string{
			"Independent shops and loyalty programs give you the best odds.",
			"Timing beats luck; ask for drop days.",
		}
		resp.StoreTargets = []string{"Independent liquor shops", "Lottery-based chains"}
	}

	// State retail model, when the area pinned one down: the market's
	// hunt plan replaces the generic advice.
	if res.System.Kind != "" {
		resp.KeyPoints = []string{
			res.System.Name + ": " + res.System.Description,
			res.System.AllocationTip,
		}
		for _, step := range res.System.Steps {
			resp.ItemList = append(resp.ItemList, Item{Label: step.Name, Value: step.Action + ". " + step.Tip})
		}
		if url, ok := stores.Website(res.State); ok {
			resp.ItemList = append(resp.ItemList, Item{Label: "State website", Value: url})
		}
	}

	if len(stops) == 0 {
		stops = append(stops, Stop{
			Name:    "No verified stores yet",
			Address: res.Label,
			Notes:   "I couldn't verify stores in this area. Search for local liquor stores and ask about allocation lists.",
		})
		resp.NextStep = "Send a nearby ZIP and I'll tighten the search."
	} else {
		resp.NextStep = "Call the top two stops and ask how they release allocated bottles."
	}
	resp.Stops = stops
	return resp
}

func (s *Service) handlePairing(ctx context.Context, sess *Session) Response {
	intensity := sess.Pairing.Intensity
	if intensity == "" && s.profiles != nil && sess.UserID != "" {
		if pref, err := s.profiles.PreferredIntensity(ctx, sess.UserID); err == nil && pref != "" {
			intensity = pref
		}
	}
	if intensity == "" {
		intensity = "medium"
	}
	sess.Pairing.Intensity = intensity

	var primary pairing.Recommendation
	var alts []pairing.Recommendation
	if sess.Pairing.SubjectCategory == CategoryCigar {
		primary, alts = pairing.ForCigar(sess.Pairing.Subject, intensity)
	} else {
		primary, alts = pairing.ForBourbon(sess.Pairing.Subject, intensity)
	}

	detail := toDetail(primary)
	resp := Response{
		Mode:    ModePairing,
		Summary: fmt.Sprintf("Here's a pairing that works with %s.", sess.Pairing.Subject),
		KeyPoints: []string{
			"Balance matters more than matching strength.",
			"Let the cigar support the pour, not compete with it.",
		},
		PrimaryPairing: &detail,
		NextStep:       "Try it once, then tell me if you want it richer or smoother.",
	}
	for _, a := range alts {
		resp.AlternativePairings = append(resp.AlternativePairings, toDetail(a))
	}
	return resp
}

func (s *Service) handleInfo(ctx context.Context, message string, sess *Session) Response {
	if name, ok := catalog.MatchName(message); ok {
		if b, found := catalog.Lookup(name); found {
			sess.RememberEntity(CategoryBourbon, b.Name)
			return Response{
				Mode:      ModeInfo,
				Summary:   fmt.Sprintf("%s: %s", b.Name, b.Why),
				KeyPoints: b.TastingNotes,
				ItemList: []Item{
					{Label: "Distillery", Value: b.Distillery},
					{Label: "Proof", Value: b.Proof},
					{Label: "Age", Value: b.Age},
					{Label: "Price", Value: b.PriceRange},
					{Label: "Availability", Value: b.Availability},
					{Label: "Mashbill", Value: b.Mashbill},
				},
				NextStep: "Ask for a pairing or a local hunt plan whenever you're ready.",
			}
		}
	}

	answer, err := s.generateWithRetry(ctx, message)
	if err != nil {
		s.log.Warn("text generation failed", zap.Error(err))
		return Response{
			Mode:     ModeInfo,
			Summary:  "I couldn't pull that answer up right now.",
			NextStep: "Give it another shot in a minute, or ask about a bottle I know cold.",
		}
	}
	return Response{
		Mode:    ModeInfo,
		Summary: answer,
		KeyPoints: []string{
			"Proof, mashbill, and aging drive flavor.",
			"Price doesn't always equal quality.",
		},
		NextStep: "If you want, ask for a pairing or a local hunt plan.",
	}
}

// generateWithRetry gives the model a bounded number of attempts, each
// under its own deadline. We never wait on it indefinitely.
func (s *Service) generateWithRetry(ctx context.Context, message string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < llmAttempts; attempt++ {
		gctx, cancel := context.WithTimeout(ctx, llmTimeout)
		answer, err := s.gen.GenerateAnswer(gctx, message)
		cancel()
		if err == nil {
			return answer, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (s *Service) recordInteraction(ctx context.Context, sess *Session, mode Mode) {
	if s.profiles == nil || sess.UserID == "" {
		return
	}
	entity, category := turnEntity(sess, mode)
	if entity == "" {
		return
	}
	if err := s.profiles.RecordInteraction(ctx, sess.UserID, entity, string(category), string(mode)); err != nil {
		s.log.Warn("record interaction failed", zap.Error(err), zap.String("user_id", sess.UserID))
	}
}

func turnEntity(sess *Session, mode Mode) (string, Category) {
	switch mode {
	case ModePairing:
		return sess.Pairing.Subject, sess.Pairing.SubjectCategory
	case ModeHunt:
		if sess.Hunt.TargetKind == "bottle" {
			return sess.Hunt.Target, CategoryBourbon
		}
		return "", ""
	default:
		if e, ok := sess.Entities[CategoryBourbon]; ok {
			return e.Name, CategoryBourbon
		}
		if e, ok := sess.Entities[CategoryCigar]; ok {
			return e.Name, CategoryCigar
		}
		return "", ""
	}
}

func toDetail(r pairing.Recommendation) PairingDetail {
	return PairingDetail{
		Cigar:      r.Cigar,
		Strength:   r.Strength,
		Why:        r.Why,
		Pour:       r.Pour,
		QualityTag: r.QualityTag,
	}
}
