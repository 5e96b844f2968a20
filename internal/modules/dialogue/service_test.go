package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"caddie/internal/modules/stores"
)

type fakeResolver struct {
	res      stores.Resolution
	lastHint string
	panics   bool
}

func (f *fakeResolver) Resolve(ctx context.Context, areaHint string) stores.Resolution {
	if f.panics {
		panic("resolver blew up")
	}
	f.lastHint = areaHint
	return f.res
}

type fakeGen struct {
	answer string
	err    error
	calls  int
}

func (f *fakeGen) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.answer, f.err
}

type fakeProfiles struct {
	intensity string
	recorded  []string
	err       error
}

func (f *fakeProfiles) RecordInteraction(ctx context.Context, userID, entity, category, mode string) error {
	f.recorded = append(f.recorded, entity+"/"+category+"/"+mode)
	return f.err
}

func (f *fakeProfiles) PreferredIntensity(ctx context.Context, userID string) (string, error) {
	return f.intensity, nil
}

func lat(f float64) *float64 { return &f }

func newTestService(r StoreResolver) (*Service, *fakeGen, *fakeProfiles) {
	gen := &fakeGen{answer: "Straight answer."}
	profiles := &fakeProfiles{}
	return NewService(r, gen, profiles, zap.NewNop()), gen, profiles
}

func someStores() stores.Resolution {
	return stores.Resolution{
		Label: "Atlanta, GA 30344, USA",
		Records: []stores.Record{
			{Name: "Green's Beverages", Address: "2625 Piedmont Rd NE", Phone: "(404) 233-3845",
				Notes: "Allocation list.", Lat: lat(33.82), Lng: lat(-84.35), Provenance: stores.ProvenanceCurated},
			{Name: "Midtown Spirits", Address: "100 Main St",
				Notes: "Found via live search.", Lat: lat(33.80), Lng: lat(-84.36), Provenance: stores.ProvenanceLive},
		},
	}
}

// A vague hunt request gets one clarifying question, and the very next
// message is consumed as the answer.
func TestHuntClarifyThenAnswer(t *testing.T) {
	resolver := &fakeResolver{res: someStores()}
	svc, _, _ := newTestService(resolver)
	sess := NewSession("u1")

	r1 := svc.ProcessTurn(context.Background(), "find rare allocations", sess)
	if r1.Mode != ModeClarify {
		t.Fatalf("first turn mode = %q, want clarify", r1.Mode)
	}
	if sess.Pending == nil || sess.Pending.Mode != ModeHunt || sess.Pending.Slot != slotHuntArea {
		t.Fatalf("pending = %+v, want hunt area question", sess.Pending)
	}
	if len(r1.ItemList) == 0 {
		t.Error("clarify response should carry example answers")
	}

	r2 := svc.ProcessTurn(context.Background(), "30344 best allocation shops", sess)
	if r2.Mode != ModeHunt {
		t.Fatalf("second turn mode = %q, want hunt", r2.Mode)
	}
	if sess.Pending != nil {
		t.Error("pending clarification survived its answer")
	}
	if resolver.lastHint != "30344" {
		t.Errorf("resolver hint = %q, want the extracted ZIP", resolver.lastHint)
	}
	if len(r2.Stops) != 2 {
		t.Errorf("got %d stops, want 2", len(r2.Stops))
	}
	if !strings.Contains(r2.Summary, "Atlanta") {
		t.Errorf("summary %q should use the resolved label", r2.Summary)
	}
}

// A fully specified first message needs no clarification at all.
func TestHuntDirect(t *testing.T) {
	resolver := &fakeResolver{res: someStores()}
	svc, _, _ := newTestService(resolver)
	sess := NewSession("u1")

	r := svc.ProcessTurn(context.Background(), "30344 best allocation shops", sess)
	if r.Mode != ModeHunt {
		t.Fatalf("mode = %q, want hunt", r.Mode)
	}
	if sess.Pending != nil {
		t.Error("no clarification should be pending")
	}
	if len(r.StoreTargets) == 0 {
		t.Error("store hunt should name store targets")
	}
}

// "What bourbon pairs with it" after discussing a cigar must pair against
// that cigar, not re-describe it.
func TestPairingPronounResolution(t *testing.T) {
	svc, _, _ := newTestService(&fakeResolver{})
	sess := NewSession("u1")
	sess.Entities[CategoryCigar] = Entity{Name: "Padron 1964 Maduro", UpdatedAt: time.Now()}

	r := svc.ProcessTurn(context.Background(), "what bourbon pairs with it", sess)
	if r.Mode != ModePairing {
		t.Fatalf("mode = %q, want pairing", r.Mode)
	}
	if r.PrimaryPairing == nil {
		t.Fatal("no primary pairing")
	}
	if r.PrimaryPairing.Cigar != "Padron 1964 Maduro" {
		t.Errorf("pairing subject = %q, want the remembered cigar", r.PrimaryPairing.Cigar)
	}
	if r.PrimaryPairing.Pour == "" {
		t.Error("bourbon-for-cigar pairing must name a pour")
	}
	if r.PrimaryPairing.Strength != "full" {
		t.Errorf("strength = %q, a maduro should read as full", r.PrimaryPairing.Strength)
	}
}

func TestPairingClarifyNeverAsksTwice(t *testing.T) {
	svc, _, _ := newTestService(&fakeResolver{})
	sess := NewSession("u1")

	r1 := svc.ProcessTurn(context.Background(), "pair me something", sess)
	if r1.Mode != ModeClarify {
		t.Fatalf("first turn mode = %q, want clarify", r1.Mode)
	}

	// The answer names no known bottle, cigar, or spirit; it is still
	// taken as the subject rather than re-asked.
	r2 := svc.ProcessTurn(context.Background(), "something smooth from my shelf", sess)
	if r2.Mode == ModeClarify {
		t.Fatal("same slot asked twice in a row")
	}
	if r2.Mode != ModePairing || r2.PrimaryPairing == nil {
		t.Fatalf("mode = %q, want a pairing with a primary pick", r2.Mode)
	}
	if sess.Pairing.Intensity != "medium" {
		t.Errorf("intensity = %q, want the medium default", sess.Pairing.Intensity)
	}
}

func TestPairingIntensityFromProfile(t *testing.T) {
	resolver := &fakeResolver{}
	svc, _, profiles := newTestService(resolver)
	profiles.intensity = "full"
	sess := NewSession("u1")

	r := svc.ProcessTurn(context.Background(), "pair a cigar with booker's", sess)
	if r.Mode != ModePairing {
		t.Fatalf("mode = %q, want pairing", r.Mode)
	}
	if sess.Pairing.Intensity != "full" {
		t.Errorf("intensity = %q, want the saved preference", sess.Pairing.Intensity)
	}
}

func TestInfoFromCatalog(t *testing.T) {
	svc, gen, _ := newTestService(&fakeResolver{})
	sess := NewSession("u1")

	r := svc.ProcessTurn(context.Background(), "tell me about buffalo trace", sess)
	if r.Mode != ModeInfo {
		t.Fatalf("mode = %q, want info", r.Mode)
	}
	if !strings.Contains(r.Summary, "Buffalo Trace") {
		t.Errorf("summary %q should come from the catalog", r.Summary)
	}
	if gen.calls != 0 {
		t.Error("catalog hit must not call the model")
	}
	if e, ok := sess.Entities[CategoryBourbon]; !ok || e.Name != "Buffalo Trace" {
		t.Errorf("entity memory = %+v, want the discussed bottle", sess.Entities)
	}
}

func TestInfoModelFailureIsSafe(t *testing.T) {
	svc, gen, _ := newTestService(&fakeResolver{})
	gen.err = errors.New("model down")
	sess := NewSession("u1")

	r := svc.ProcessTurn(context.Background(), "is bottled in bond worth the premium", sess)
	if r.Mode != ModeInfo {
		t.Fatalf("mode = %q, want info", r.Mode)
	}
	if r.Summary == "" || r.NextStep == "" {
		t.Error("failure response must stay usable")
	}
	if gen.calls != 2 {
		t.Errorf("model called %d times, want a bounded retry of 2", gen.calls)
	}
}

func TestBottleHuntPricingEnrichment(t *testing.T) {
	resolver := &fakeResolver{res: someStores()}
	svc, _, _ := newTestService(resolver)
	sess := NewSession("u1")

	r := svc.ProcessTurn(context.Background(), "where can i find blanton's in dallas", sess)
	if r.Mode != ModeHunt {
		t.Fatalf("mode = %q, want hunt", r.Mode)
	}
	if len(r.TargetBottles) != 1 || r.TargetBottles[0] != "Blanton's Single Barrel" {
		t.Errorf("target bottles = %v", r.TargetBottles)
	}
	var msrp bool
	for _, it := range r.ItemList {
		if it.Label == "MSRP" {
			msrp = true
		}
	}
	if !msrp {
		t.Errorf("item list %v missing pricing enrichment", r.ItemList)
	}
}

func TestTurnPanicBecomesFailureResponse(t *testing.T) {
	svc, _, _ := newTestService(&fakeResolver{panics: true})
	sess := NewSession("u1")

	r := svc.ProcessTurn(context.Background(), "find allocations in dallas", sess)
	if r.Mode != ModeInfo {
		t.Fatalf("mode = %q, want the generic info failure", r.Mode)
	}
	if r.Summary == "" {
		t.Error("failure response has no summary")
	}
	if r.KeyPoints == nil || r.Stops == nil {
		t.Error("failure response is not normalized")
	}
}

func TestEmptyResolutionGetsPlaceholderStop(t *testing.T) {
	resolver := &fakeResolver{res: stores.Resolution{Label: "boise"}}
	svc, _, _ := newTestService(resolver)
	sess := NewSession("u1")

	r := svc.ProcessTurn(context.Background(), "find allocated bottles near 83702", sess)
	if r.Mode != ModeHunt {
		t.Fatalf("mode = %q, want hunt", r.Mode)
	}
	if len(r.Stops) != 1 {
		t.Fatalf("got %d stops, want the single placeholder", len(r.Stops))
	}
	stop := r.Stops[0]
	if stop.Lat != nil || stop.Lng != nil {
		t.Error("placeholder stop must not carry fabricated coordinates")
	}
	if stop.Name == "" || stop.Notes == "" {
		t.Error("placeholder stop must be clearly labeled")
	}
}

func TestInteractionRecording(t *testing.T) {
	svc, _, profiles := newTestService(&fakeResolver{res: someStores()})
	sess := NewSession("u1")

	svc.ProcessTurn(context.Background(), "where can i find blanton's in dallas", sess)
	if len(profiles.recorded) != 1 {
		t.Fatalf("recorded %d interactions, want 1", len(profiles.recorded))
	}
	if profiles.recorded[0] != "Blanton's Single Barrel/bourbon/hunt" {
		t.Errorf("recorded %q", profiles.recorded[0])
	}

	// Recording failures never break the turn.
	profiles.err = errors.New("db down")
	r := svc.ProcessTurn(context.Background(), "find weller antique 107 in dallas", sess)
	if r.Mode != ModeHunt {
		t.Errorf("mode = %q, recording failure must not change the outcome", r.Mode)
	}
}

func TestTurnDeterministic(t *testing.T) {
	run := func() Response {
		svc, _, _ := newTestService(&fakeResolver{res: someStores()})
		return svc.ProcessTurn(context.Background(), "30344 best allocation shops", NewSession("u1"))
	}
	first := run()
	for i := 0; i < 5; i++ {
		got := run()
		if got.Summary != first.Summary || len(got.Stops) != len(first.Stops) || got.Mode != first.Mode {
			t.Fatal("identical turns produced different responses")
		}
	}
}

func TestHuntCarriesStatePlan(t *testing.T) {
	resolver := &fakeResolver{res: stores.Resolution{
		Label:  "Richmond, VA, USA",
		State:  "VA",
		System: stores.SystemForState("VA"),
		Records: []stores.Record{
			{Name: "Virginia ABC Store 112", Address: "1 Broad St", Provenance: stores.ProvenanceLive},
		},
	}}
	svc, _, _ := newTestService(resolver)
	sess := NewSession("u1")

	r := svc.ProcessTurn(context.Background(), "find allocated bottles in richmond, va", sess)
	if r.Mode != ModeHunt {
		t.Fatalf("mode = %q, want hunt", r.Mode)
	}

	var tipped bool
	for _, kp := range r.KeyPoints {
		if strings.Contains(kp, "lottery") {
			tipped = true
		}
	}
	if !tipped {
		t.Errorf("key points %v missing the state-controlled strategy", r.KeyPoints)
	}

	var website, steps bool
	for _, it := range r.ItemList {
		if it.Label == "State website" {
			website = true
		}
		if strings.Contains(it.Label, "lottery") || strings.Contains(it.Label, "ABC website") {
			steps = true
		}
	}
	if !website {
		t.Errorf("item list %v missing the state lottery site", r.ItemList)
	}
	if !steps {
		t.Errorf("item list %v missing the hunt plan steps", r.ItemList)
	}
}

func TestHuntShopsRequestClearsBottleTarget(t *testing.T) {
	resolver := &fakeResolver{res: someStores()}
	svc, _, _ := newTestService(resolver)
	sess := NewSession("u1")

	r1 := svc.ProcessTurn(context.Background(), "where can i find blanton's in dallas", sess)
	if r1.Mode != ModeHunt || sess.Hunt.TargetKind != "bottle" {
		t.Fatalf("first turn = %q/%q, want a bottle hunt", r1.Mode, sess.Hunt.TargetKind)
	}

	r2 := svc.ProcessTurn(context.Background(), "now just the best allocation shops in atlanta", sess)
	if r2.Mode != ModeHunt {
		t.Fatalf("second turn mode = %q, want hunt", r2.Mode)
	}
	if sess.Hunt.TargetKind != "stores" || sess.Hunt.Target != "" {
		t.Errorf("hunt state = %+v, stale bottle target should be cleared", sess.Hunt)
	}
	if len(r2.TargetBottles) != 0 {
		t.Errorf("target bottles = %v, want none for a shop hunt", r2.TargetBottles)
	}
	if len(r2.StoreTargets) == 0 {
		t.Error("shop hunt should name store targets")
	}
}
