package pairing

// README: curated pairing data. Strength matching drives everything:
// light pours take light wrappers, barrel-proof pours need a maduro
// that can stand up to them.

var wrappersByStrength = map[string][]string{
	"mild":   {"Connecticut", "Claro", "Candela"},
	"medium": {"Habano", "Corojo", "Natural"},
	"full":   {"Maduro", "Oscuro", "Ligero"},
}

var profiles = map[string]profile{
	"light_sweet": {
		Bottles: []string{
			"Buffalo Trace",
			"Maker's Mark",
			"Woodford Reserve",
			"Four Roses Small Batch",
			"Elijah Craig Small Batch",
		},
		ProofRange:  "80-94",
		FlavorNotes: "Vanilla, caramel, light oak",
		BestFor:     "mild",
		QualityTag:  "Everyday Sipper",
	},
	"medium_balanced": {
		Bottles: []string{
			"Eagle Rare 10 Year",
			"Knob Creek 9 Year",
			"Russell's Reserve 10 Year",
			"Old Forester 1920",
			"Wild Turkey 101",
		},
		ProofRange:  "95-115",
		FlavorNotes: "Balanced oak, spice, fruit",
		BestFor:     "medium",
		QualityTag:  "Weekend Pour",
	},
	"high_proof_bold": {
		Bottles: []string{
			"Booker's",
			"Stagg Jr.",
			"Elijah Craig Barrel Proof",
			"Weller Full Proof",
		},
		ProofRange:  "115-130+",
		FlavorNotes: "Bold oak, dark fruit, intense spice",
		BestFor:     "full",
		QualityTag:  "Top Shelf",
	},
	"wheated_smooth": {
		Bottles: []string{
			"Weller Special Reserve",
			"Weller Antique 107",
			"Larceny",
			"Pappy Van Winkle",
		},
		ProofRange:  "80-107",
		FlavorNotes: "Smooth, wheat sweetness, honey",
		BestFor:     "mild",
		QualityTag:  "Weekend Pour",
	},
	"rye_spicy": {
		Bottles: []string{
			"Bulleit Rye",
			"Rittenhouse Rye",
			"High West Double Rye",
			"Pikesville Rye",
		},
		ProofRange:  "90-110",
		FlavorNotes: "Spice, pepper, mint, herbal",
		BestFor:     "medium",
		QualityTag:  "Weekend Pour",
	},
}

var classics = []classic{
	{
		CigarType: "Mild Connecticut",
		Examples:  []string{"Ashton Classic", "Macanudo Cafe", "Montecristo White"},
		Bourbon:   "Maker's Mark or Buffalo Trace",
		Why:       "Light, sweet bourbons won't overpower delicate Connecticut wrappers. The vanilla and caramel notes complement the cigar's creamy, nutty flavors.",
		Strength:  "mild",
		Profile:   "light_sweet",
	},
	{
		CigarType: "Medium Habano",
		Examples:  []string{"Padron 2000", "Arturo Fuente Hemingway", "Rocky Patel Vintage 1990"},
		Bourbon:   "Eagle Rare 10 Year or Knob Creek",
		Why:       "Medium-bodied bourbons match the cigar's balanced spice and earthiness. The oak and fruit notes create harmony without competing.",
		Strength:  "medium",
		Profile:   "medium_balanced",
	},
	{
		CigarType: "Full Maduro",
		Examples:  []string{"Padron 1964 Maduro", "Liga Privada No. 9", "My Father Le Bijou"},
		Bourbon:   "Booker's or Stagg Jr.",
		Why:       "Bold, high-proof bourbons stand up to rich, chocolatey maduros. The intense oak and spice complement dark tobacco oils.",
		Strength:  "full",
		Profile:   "high_proof_bold",
	},
	{
		CigarType: "Medium-Full Corojo",
		Examples:  []string{"Tatuaje Black", "Illusione Rothchildes", "Drew Estate Undercrown"},
		Bourbon:   "Wild Turkey 101 or Old Forester 1920",
		Why:       "Spicy, flavorful bourbons match the pepper and leather in Corojo wrappers. The higher proof cuts through rich tobacco.",
		Strength:  "medium",
		Profile:   "medium_balanced",
	},
	{
		CigarType: "Mild-Medium Natural",
		Examples:  []string{"Oliva Serie G", "Romeo y Julieta Reserva Real", "Perdomo Champagne"},
		Bourbon:   "Four Roses Small Batch or Weller Special Reserve",
		Why:       "Smooth, approachable bourbons enhance the cigar's cedar and toast notes without overwhelming. Wheated bourbons especially pair well.",
		Strength:  "medium",
		Profile:   "wheated_smooth",
	},
	{
		CigarType: "Full-Bodied Nicaraguan",
		Examples:  []string{"Padron 1926", "Oliva Serie V", "Drew Estate Liga Privada"},
		Bourbon:   "Elijah Craig Barrel Proof or Weller Full Proof",
		Why:       "High-proof, complex bourbons match the intensity of Nicaraguan tobacco. Bold flavors create a powerful, satisfying combination.",
		Strength:  "full",
		Profile:   "high_proof_bold",
	},
}

// bottlesByStrength is the short list handed back when the subject is a
// cigar and we pick the pour.
var bottlesByStrength = map[string][]string{
	"mild":   {"Maker's Mark", "Buffalo Trace", "Weller Special Reserve", "Four Roses Small Batch"},
	"medium": {"Eagle Rare 10 Year", "Knob Creek", "Wild Turkey 101", "Old Forester 1920"},
	"full":   {"Booker's", "Stagg Jr.", "Elijah Craig Barrel Proof", "Wild Turkey Rare Breed"},
}

var tips = []string{
	"Match strength with strength; don't let one overpower the other.",
	"Higher proof cuts through rich tobacco oils.",
	"Wheated bourbons pair beautifully with Connecticut wrappers.",
	"Sip neat or with a single large ice cube; skip the mixers.",
}
