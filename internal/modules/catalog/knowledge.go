package catalog

// bottles is keyed by the lowercase shorthand people actually type.
var bottles = map[string]Bottle{
	"buffalo trace": {
		Name:         "Buffalo Trace",
		Distillery:   "Buffalo Trace Distillery",
		Location:     "Frankfort, Kentucky",
		Proof:        "90",
		Age:          "No age statement (typically 8-10 years)",
		PriceRange:   "$25-30",
		Availability: "Widely available",
		Mashbill:     "Low rye bourbon mashbill",
		TastingNotes: []string{
			"Vanilla and toffee on the nose",
			"Brown sugar, oak, and dark fruit on the palate",
			"Smooth, balanced finish",
		},
		Why: "The gateway bourbon: approachable price, excellent quality, works for beginners and enthusiasts alike.",
	},
	"evan williams black": {
		Name:         "Evan Williams Black Label",
		Distillery:   "Heaven Hill Distillery",
		Location:     "Bardstown, Kentucky",
		Proof:        "86",
		Age:          "No age statement",
		PriceRange:   "$15-20",
		Availability: "Widely available",
		Mashbill:     "78% corn, 12% malted barley, 10% rye",
		TastingNotes: []string{
			"Honey and vanilla with hints of caramel",
			"Oak and light spice on the palate",
			"Short, sweet finish",
		},
		Why: "One of the best value bourbons on the market, consistently smooth for mixing or sipping.",
	},
	"wild turkey 101": {
		Name:         "Wild Turkey 101",
		Distillery:   "Wild Turkey Distillery",
		Location:     "Lawrenceburg, Kentucky",
		Proof:        "101",
		Age:          "6-8 years",
		PriceRange:   "$25-30",
		Availability: "Widely available",
		Mashbill:     "High rye (75% corn, 13% rye, 12% malted barley)",
		TastingNotes: []string{
			"Bold caramel, vanilla, and baking spices",
			"Rich oak and pepper notes",
			"Long, warming finish with spice",
		},
		Why: "101 proof delivers bold flavor at an incredible price; a cocktail workhorse.",
	},
	"four roses single barrel": {
		Name:         "Four Roses Single Barrel",
		Distillery:   "Four Roses Distillery",
		Location:     "Lawrenceburg, Kentucky",
		Proof:        "100",
		Age:          "7+ years",
		PriceRange:   "$40-50",
		Availability: "Widely available",
		Mashbill:     "OBSV (60% corn, 35% rye, 5% malted barley)",
		TastingNotes: []string{
			"Rich fruit and floral notes",
			"Vanilla, caramel, and light spice",
			"Long, elegant finish",
		},
		Why: "Single barrel selection means each bottle is unique, with consistently excellent quality.",
	},
	"maker's mark": {
		Name:         "Maker's Mark",
		Distillery:   "Maker's Mark Distillery",
		Location:     "Loretto, Kentucky",
		Proof:        "90",
		Age:          "No age statement (typically 5-7 years)",
		PriceRange:   "$30-35",
		Availability: "Widely available",
		Mashbill:     "Wheated bourbon (70% corn, 16% wheat, 14% malted barley)",
		TastingNotes: []string{
			"Soft wheat character with caramel sweetness",
			"Vanilla, oak, and light fruit",
			"Gentle, easy-drinking finish",
		},
		Why: "The wheated mashbill makes an exceptionally smooth bourbon; the red wax seal is hand-dipped.",
	},
	"woodford reserve": {
		Name:         "Woodford Reserve",
		Distillery:   "Woodford Reserve Distillery",
		Location:     "Versailles, Kentucky",
		Proof:        "90.4",
		Age:          "No age statement",
		PriceRange:   "$35-40",
		Availability: "Widely available",
		Mashbill:     "72% corn, 18% rye, 10% malted barley",
		TastingNotes: []string{
			"Rich dried fruit, vanilla, and tobacco",
			"Complex with hints of chocolate and spice",
			"Long, smooth finish with oak",
		},
		Why: "Triple distilled in small pot stills for unusual complexity; the official bourbon of the Kentucky Derby.",
	},
	"eagle rare 10": {
		Name:         "Eagle Rare 10 Year",
		Distillery:   "Buffalo Trace Distillery",
		Location:     "Frankfort, Kentucky",
		Proof:        "90",
		Age:          "10 years",
		PriceRange:   "$35-45 (MSRP, often marked up)",
		Availability: "Semi-allocated (can be hard to find)",
		Mashbill:     "Buffalo Trace Mashbill #1 (low rye)",
		TastingNotes: []string{
			"Toffee and orange peel",
			"Honey, leather, and oak",
			"Long, dry finish with subtle spice",
		},
		Why: "Ten years of aging at an incredible price point; punches well above its weight class.",
	},
	"booker's": {
		Name:         "Booker's Bourbon",
		Distillery:   "Jim Beam Distillery",
		Location:     "Clermont, Kentucky",
		Proof:        "121-130 (varies by batch)",
		Age:          "6-8 years (varies by batch)",
		PriceRange:   "$80-120",
		Availability: "Semi-allocated",
		Mashbill:     "77% corn, 13% rye, 10% malted barley",
		TastingNotes: []string{
			"Rich vanilla and caramel balanced with oak and spice",
			"Bold cinnamon and black pepper heat",
			"Long, warm finish with lingering spice",
		},
		Why: "Bottled uncut and unfiltered at cask strength; the whiskey exactly as the distiller intended.",
	},
	"elijah craig barrel proof": {
		Name:         "Elijah Craig Barrel Proof",
		Distillery:   "Heaven Hill Distillery",
		Location:     "Bardstown, Kentucky",
		Proof:        "120-140 (varies by batch)",
		Age:          "12 years",
		PriceRange:   "$65-80",
		Availability: "Semi-allocated",
		Mashbill:     "78% corn, 10% rye, 12% malted barley",
		TastingNotes: []string{
			"Dark caramel, vanilla, and butterscotch",
			"Rich oak, dried fruit, and baking spices",
			"Long, powerful finish",
		},
		Why: "Barrel proof at 12 years delivers incredible depth; consistently high-scoring.",
	},
	"weller special reserve": {
		Name:         "Weller Special Reserve",
		Distillery:   "Buffalo Trace Distillery",
		Location:     "Frankfort, Kentucky",
		Proof:        "90",
		Age:          "No age statement (typically 7 years)",
		PriceRange:   "$25-30 (MSRP, often marked up 3-5x)",
		Availability: "Allocated (raffle/lottery systems)",
		Mashbill:     "Wheated bourbon (same mashbill as Pappy Van Winkle)",
		TastingNotes: []string{
			"Soft wheat character with honey sweetness",
			"Caramel, vanilla, and butterscotch",
			"Gentle finish with light oak",
		},
		Why: "Uses the same wheated mashbill as Pappy Van Winkle at a fraction of the price.",
	},
	"weller antique 107": {
		Name:         "Weller Antique 107",
		Distillery:   "Buffalo Trace Distillery",
		Location:     "Frankfort, Kentucky",
		Proof:        "107",
		Age:          "No age statement (typically 6-7 years)",
		PriceRange:   "$30-35 (MSRP, often marked up 3-5x)",
		Availability: "Allocated",
		Mashbill:     "Wheated bourbon (same as Pappy)",
		TastingNotes: []string{
			"Caramel, vanilla, and honey",
			"Wheat sweetness with oak spice",
			"Long, warm finish",
		},
		Why: "107 proof wheated bourbon at MSRP is incredible; the closest affordable thing to Pappy.",
	},
	"blanton's single barrel": {
		Name:         "Blanton's Single Barrel",
		Distillery:   "Buffalo Trace Distillery",
		Location:     "Frankfort, Kentucky",
		Proof:        "93",
		Age:          "6-8 years",
		PriceRange:   "$60-70 (MSRP, often marked up 2-3x)",
		Availability: "Allocated",
		Mashbill:     "Buffalo Trace Mashbill #2 (high rye)",
		TastingNotes: []string{
			"Citrus, honey, and vanilla",
			"Caramel with hints of orange peel",
			"Long, clean finish",
		},
		Why: "The first single barrel bourbon ever commercially bottled; the horse stopper is iconic.",
	},
	"eh taylor small batch": {
		Name:         "E.H. Taylor Small Batch",
		Distillery:   "Buffalo Trace Distillery",
		Location:     "Frankfort, Kentucky",
		Proof:        "100",
		Age:          "No age statement (typically 7-10 years)",
		PriceRange:   "$40-50 (MSRP, often marked up)",
		Availability: "Allocated",
		Mashbill:     "Buffalo Trace Mashbill #1 (low rye)",
		TastingNotes: []string{
			"Caramel, vanilla, and butterscotch",
			"Oak and brown sugar",
			"Long, sweet finish",
		},
		Why: "Bottled-in-bond at 100 proof, named for the father of modern bourbon.",
	},
	"stagg jr": {
		Name:         "Stagg Jr.",
		Distillery:   "Buffalo Trace Distillery",
		Location:     "Frankfort, Kentucky",
		Proof:        "125-140 (varies by batch)",
		Age:          "8-9 years",
		PriceRange:   "$55-65 (MSRP, often marked up)",
		Availability: "Allocated",
		Mashbill:     "Buffalo Trace Mashbill #1 (low rye)",
		TastingNotes: []string{
			"Dark cherry, brown sugar, and vanilla",
			"Bold oak and dark chocolate",
			"Long, powerful finish",
		},
		Why: "A younger, more approachable George T. Stagg at cask strength; exceptional value.",
	},
	"pappy van winkle 15": {
		Name:         "Pappy Van Winkle Family Reserve 15 Year",
		Distillery:   "Buffalo Trace Distillery (Old Rip Van Winkle brand)",
		Location:     "Frankfort, Kentucky",
		Proof:        "107",
		Age:          "15 years",
		PriceRange:   "$120 (MSRP, secondary $1,500-3,000)",
		Availability: "Unicorn (lottery only)",
		Mashbill:     "Wheated bourbon (same as Weller)",
		TastingNotes: []string{
			"Rich caramel, vanilla, and toffee",
			"Dark fruit, oak, and leather",
			"Incredibly long, refined finish",
		},
		Why: "Fifteen years of aging creates legendary depth; the most sought-after bourbon in the world.",
	},
	"henry mckenna 10 year": {
		Name:         "Henry McKenna 10 Year Single Barrel",
		Distillery:   "Heaven Hill Distillery",
		Location:     "Bardstown, Kentucky",
		Proof:        "100",
		Age:          "10 years",
		PriceRange:   "$35-45",
		Availability: "Semi-allocated",
		Mashbill:     "75% corn, 13% rye, 12% malted barley",
		TastingNotes: []string{
			"Caramel, vanilla, and butterscotch",
			"Oak, leather, and dark fruit",
			"Long, smooth finish",
		},
		Why: "A bottled-in-bond 10-year single barrel at this price is unbeatable.",
	},
}

// pricingTable covers the bottles people hunt most; values are street figures,
// not a guarantee.
var pricingTable = map[string]pricing{
	"blanton's":    {MSRP: 65, SecondaryLow: 130, SecondaryHigh: 200},
	"eh taylor":    {MSRP: 45, SecondaryLow: 90, SecondaryHigh: 150},
	"stagg":        {MSRP: 55, SecondaryLow: 150, SecondaryHigh: 300},
	"weller":       {MSRP: 30, SecondaryLow: 80, SecondaryHigh: 200},
	"eagle rare":   {MSRP: 40, SecondaryLow: 70, SecondaryHigh: 120},
	"pappy":        {MSRP: 120, SecondaryLow: 1500, SecondaryHigh: 3000},
	"van winkle":   {MSRP: 120, SecondaryLow: 1500, SecondaryHigh: 3000},
	"elijah craig": {MSRP: 70, SecondaryLow: 90, SecondaryHigh: 140},
}
