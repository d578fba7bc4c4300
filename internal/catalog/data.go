package catalog

import (
	"cleanair-backend/internal/money"
)

const (
	// DefaultProvince backs the tax-table fallback and must stay in ProvinceTaxes.
	DefaultProvince = "Québec"

	// DryerVentExtraID is the one extra priced per sub-location.
	DryerVentExtraID = "extra-dryer-vent"
)

// ExtendedCoverage is the fixed coverage fee added to every booking.
const ExtendedCoverage = money.Cents(859)

// VentUnitPrice is charged per supply/return vent when the customer knows
// their vent count up front.
const VentUnitPrice = money.Cents(500)

var Categories = []Category{
	{
		ID:          "central-air",
		Name:        Text{EN: "Central Air System", FR: "Système d'air central"},
		Description: Text{EN: "Furnace & Ducts. For homes with vents in every room.", FR: "Fournaise et conduits. Pour maisons avec bouches dans chaque pièce."},
		Icon:        "central-air",
		MostPopular: true,
		Packages: []Package{
			{
				ID:          "platinum",
				Name:        Text{EN: "Platinum Package", FR: "Forfait Platine"},
				Price:       63000,
				PriceNote:   &Text{EN: "+ VENTS", FR: "+ BOUCHES"},
				Description: Text{EN: "The ultimate standard of care for complex, post-1993 homes. Combines the critical three-point circuit (Ducts, Blower, Coils) with deep cleaning of the Air Exchanger, Dryer Vent, and bathroom exhaust systems.", FR: "La norme ultime pour les maisons complexes construites après 1993. Combine le circuit tripoint critique avec un nettoyage en profondeur de l'échangeur d'air, du sèche-linge et des ventilateurs de salle de bain."},
				Includes: []Text{
					{EN: "Main Supply & Return Trunks", FR: "Conduits principaux d'alimentation et de retour"},
					{EN: "Supply & Return Vents ($5 ea)", FR: "Bouches d'alimentation et de retour (5$ ch)"},
					{EN: "Furnace Cabinet Clean & Check", FR: "Nettoyage et vérification du cabinet de fournaise"},
					{EN: "Blower + Motor Cleaning (Air/Brush method)", FR: "Nettoyage soufflante + moteur (méthode air/brosse)"},
					{EN: "Furnace Coil Cleaning (Air/Brush method)", FR: "Nettoyage bobines de fournaise (méthode air/brosse)"},
					{EN: "Air Exchanger Cleaning", FR: "Nettoyage de l'échangeur d'air"},
					{EN: "Dryer Vent Cleaning (Ground-level access only)", FR: "Nettoyage sèche-linge (accès au sol seulement)"},
					{EN: "Bathroom Exhaust Fans (2 included)", FR: "Ventilateurs de salle de bain (2 inclus)"},
					{EN: "Dust, Chemical & Air Quality Scan ($200 Value) (1 Room)", FR: "Analyse poussière, chimique & qualité d'air (200$) (1 pièce)"},
				},
				HasVentCount: true,
				UnitLabel:    &Text{EN: "furnaces", FR: "fournaises"},
			},
			{
				ID:          "healthy-home",
				Name:        Text{EN: "Healthy Home Package", FR: "Forfait Maison Saine"},
				Price:       49000,
				PriceNote:   &Text{EN: "+ VENTS", FR: "+ BOUCHES"},
				Description: Text{EN: "The highest standard of care for homes with central air. Targets the critical three-point circuit of Ducts, Blower, and Coils for maximum air flow and longevity.", FR: "La norme la plus élevée pour les maisons avec air central. Cible le circuit tripoint critique — conduits, soufflante et bobines — pour un débit d'air maximal."},
				Includes: []Text{
					{EN: "Main Supply & Return Trunks", FR: "Conduits principaux d'alimentation et de retour"},
					{EN: "Supply & Return Vents ($5 ea)", FR: "Bouches d'alimentation et de retour (5$ ch)"},
					{EN: "Furnace Cabinet Clean & Check", FR: "Nettoyage et vérification du cabinet de fournaise"},
					{EN: "Blower + Motor Cleaning (Air/Brush method)", FR: "Nettoyage soufflante + moteur (méthode air/brosse)"},
					{EN: "Furnace Coil Cleaning (Air/Brush method)", FR: "Nettoyage bobines de fournaise (méthode air/brosse)"},
					{EN: "Dust, Chemical & Air Quality Scan ($200 Value) (1 Room)", FR: "Analyse poussière, chimique & qualité d'air (200$) (1 pièce)"},
				},
				HasVentCount: true,
				UnitLabel:    &Text{EN: "furnaces", FR: "fournaises"},
			},
			{
				ID:          "preferred",
				Name:        Text{EN: "Preferred Package", FR: "Forfait Préféré"},
				Price:       43000,
				PriceNote:   &Text{EN: "+ VENTS", FR: "+ BOUCHES"},
				Description: Text{EN: "The essential mechanical service. Includes comprehensive cleaning of the blower and motor for maximum efficiency and system longevity.", FR: "Le service mécanique essentiel. Comprend un nettoyage complet de la soufflante et du moteur pour une efficacité maximale."},
				Includes: []Text{
					{EN: "Main Supply & Return Trunks", FR: "Conduits principaux d'alimentation et de retour"},
					{EN: "Supply & Return Vents ($5 ea)", FR: "Bouches d'alimentation et de retour (5$ ch)"},
					{EN: "Furnace Cabinet Clean & Check", FR: "Nettoyage et vérification du cabinet de fournaise"},
					{EN: "Blower + Motor Cleaning (Air/Brush method)", FR: "Nettoyage soufflante + moteur (méthode air/brosse)"},
					{EN: "Dust & Chemical Level Air Scan ($150 Value) (1 Room)", FR: "Analyse poussière & niveau chimique (150$) (1 pièce)"},
				},
				HasVentCount: true,
				UnitLabel:    &Text{EN: "furnaces", FR: "fournaises"},
			},
			{
				ID:          "base",
				Name:        Text{EN: "Base Package", FR: "Forfait de base"},
				Price:       33000,
				PriceNote:   &Text{EN: "+ VENTS", FR: "+ BOUCHES"},
				Description: Text{EN: "The essential foundation for clean air. Focuses on removing built-up dust from the main ductwork arteries to improve airflow and general home hygiene.", FR: "La base essentielle pour un air propre. Se concentre sur l'élimination de la poussière accumulée dans les conduits principaux."},
				Includes: []Text{
					{EN: "Main Supply & Return Trunks", FR: "Conduits principaux d'alimentation et de retour"},
					{EN: "Supply & Return Vents ($5 ea)", FR: "Bouches d'alimentation et de retour (5$ ch)"},
					{EN: "Furnace Cabinet Clean & Check", FR: "Nettoyage et vérification du cabinet de fournaise"},
					{EN: "Dust Level Air Scan ($100 Value) (1 Room)", FR: "Analyse niveau de poussière (100$) (1 pièce)"},
				},
				HasVentCount: true,
				UnitLabel:    &Text{EN: "furnaces", FR: "fournaises"},
			},
		},
	},
	{
		ID:          "wall-unit",
		Name:        Text{EN: "Wall Unit / Mini-Split", FR: "Unité murale / Mini-split"},
		Description: Text{EN: "Ductless systems mounted on walls.", FR: "Systèmes sans conduits montés sur les murs."},
		Icon:        "wall-unit",
		Packages: []Package{
			{
				ID:          "wall-unit-cleaning",
				Name:        Text{EN: "Wall Unit (Mini-Split)", FR: "Unité murale (Mini-Split)"},
				Price:       25000,
				Description: Text{EN: "Eliminate hidden mold and restore peak efficiency. Uses foaming antimicrobial agents to sanitize the coil and remove biological buildup from the internal scroll fan.", FR: "Éliminez les moisissures cachées et restaurez l'efficacité maximale avec des agents antimicrobiens moussants."},
				Includes: []Text{
					{EN: "Full Non-Invasive Disassembly", FR: "Démontage complet non invasif"},
					{EN: "Deep Coil Restoration (Non-Corrosive Wash)", FR: "Restauration profonde de la bobine (lavage non corrosif)"},
					{EN: "Cabinet Casing, Fan, and Drain Pan Cleaned", FR: "Boîtier, ventilateur et bac d'égouttement nettoyés"},
					{EN: "Exterior Condenser Unit Cleaned", FR: "Unité condensatrice extérieure nettoyée"},
				},
				UnitLabel: &Text{EN: "units", FR: "unités"},
			},
		},
	},
	{
		ID:          "dryer-vent",
		Name:        Text{EN: "Dryer Vent", FR: "Conduit de sèche-linge"},
		Description: Text{EN: "Prevent fire hazards & improve efficiency.", FR: "Prévenez les risques d'incendie et améliorez l'efficacité."},
		Icon:        "dryer",
		Packages: []Package{
			{
				ID:          "dryer-vent-cleaning",
				Name:        Text{EN: "Dryer Vent Cleaning", FR: "Nettoyage conduit sèche-linge"},
				Price:       20000,
				PriceLabel:  &Text{EN: "STARTING AT", FR: "À PARTIR DE"},
				Description: Text{EN: "Complete Fire Safety: We clean the entire vent line exclusively from the exterior using specialized, non-abrasive technology to safely eliminate hidden lint hazards.", FR: "Sécurité incendie complète: nettoyage de toute la conduite depuis l'extérieur avec une technologie non abrasive."},
				Includes: []Text{
					{EN: "Entire Duct Line Cleaned (From exterior to dryer wall)", FR: "Toute la conduite nettoyée (de l'extérieur jusqu'au mur)"},
					{EN: "Exterior Vent Cover Cleaning", FR: "Nettoyage de la grille d'aération extérieure"},
				},
				DryerLocations: []DryerLocation{
					{ID: "ground", Label: Text{EN: "Ground level (No ladder)", FR: "Niveau du sol (sans échelle)"}, Price: 20000},
					{ID: "under-deck", Label: Text{EN: "Under Deck (3' min clearance)", FR: "Sous terrasse (3' min)"}, Price: 25000},
					{ID: "small-ladder", Label: Text{EN: "Small Ladder (14 foot)", FR: "Petite échelle (14 pieds)"}, Price: 25000},
					{ID: "big-ladder", Label: Text{EN: "Big Ladder (22 foot)", FR: "Grande échelle (22 pieds)"}, Price: 30000},
					{ID: "rooftop", Label: Text{EN: "Rooftop / Difficult Access (Access Provided)", FR: "Toit / Accès difficile (accès fourni)"}, Price: 35000},
					{ID: "inside-only", Label: Text{EN: "Inside Only – No Exterior Access", FR: "Intérieur seulement – Sans accès extérieur"}, Price: 25000},
				},
			},
		},
	},
	{
		ID:          "air-exchanger",
		Name:        Text{EN: "Air Exchanger", FR: "Échangeur d'air"},
		Description: Text{EN: "Fresh air intake systems (HRV/ERV).", FR: "Systèmes d'entrée d'air frais (VRC/VRE)."},
		Icon:        "air-exchanger",
		Packages: []Package{
			{
				ID:          "air-exchanger-cleaning",
				Name:        Text{EN: "Air Exchanger Cleaning", FR: "Nettoyage échangeur d'air"},
				Price:       35000,
				PriceNote:   &Text{EN: "+ VENTS", FR: "+ BOUCHES"},
				Description: Text{EN: "Standalone cleaning for HRV/ERV units and dedicated ducts. Ideal for homes with electric heating.", FR: "Nettoyage autonome pour les unités VRC/VRE et les conduits dédiés. Idéal pour les maisons avec chauffage électrique."},
				Includes: []Text{
					{EN: "Cleaning of HRV/ERV Cabinet", FR: "Nettoyage du cabinet VRC/VRE"},
					{EN: "Cleaning of Motor(s) and Fan(s)", FR: "Nettoyage du/des moteur(s) et ventilateur(s)"},
					{EN: "Duct Cleaning (Supply/Return) - $5/ea", FR: "Nettoyage des conduits (alimentation/retour) - 5$/ch"},
					{EN: "Core and Filter cleaning (Air-dusting only)", FR: "Nettoyage du noyau et du filtre (dépoussiérage seulement)"},
				},
				HasVentCount: true,
				UnitLabel:    &Text{EN: "units", FR: "unités"},
			},
		},
	},
	{
		ID:          "specialty",
		Name:        Text{EN: "Specialty", FR: "Spécialité"},
		Description: Text{EN: "Specific component cleaning.", FR: "Nettoyage de composants spécifiques."},
		Icon:        "specialty",
		Packages: []Package{
			{
				ID:          "uvc-light",
				Name:        Text{EN: "UV-C Light Kit & Installation", FR: "Kit lumière UV-C et installation"},
				Price:       47500,
				Description: Text{EN: "Medical-grade UV-C sanitization that continuously sterilizes your air and prevents mold growth. Includes professional installation and warranty.", FR: "Désinfection UV-C de qualité médicale qui stérilise l'air en continu et prévient les moisissures. Installation professionnelle incluse."},
				Includes: []Text{
					{EN: "36W UV-C Sterilization: Neutralizes 99.9% of airborne viruses and bacteria", FR: "Stérilisation UV-C 36W: neutralise 99,9% des virus et bactéries"},
					{EN: "Precision Install: Professionally drilled, mounted, and airtight-sealed", FR: "Installation précise: percé, monté et scellé hermétiquement"},
					{EN: "90-day labor coverage + 1-year limited defect warranty", FR: "90 jours main-d'œuvre + 1 an pièces défectueuses"},
				},
				UnitLabel: &Text{EN: "units", FR: "unités"},
			},
			{
				ID:          "furnace-blower",
				Name:        Text{EN: "Furnace / Air Handling Unit (Blower & Motor Cleaning)", FR: "Fournaise / Unité de traitement d'air (nettoyage soufflante et moteur)"},
				Price:       25000,
				Description: Text{EN: "A dual Brush & Air Wash method strips settled dust and allergens from the blower and motor housing so they aren't recirculated into your home.", FR: "Méthode double brosse et lavage à l'air pour éliminer la poussière et les allergènes du logement de la soufflante et du moteur."},
				Includes: []Text{
					{EN: "Blower Wheel Deep Cleaning", FR: "Nettoyage en profondeur de la roue de soufflante"},
					{EN: "Motor Housing Air Wash", FR: "Lavage à l'air du logement du moteur"},
				},
				UnitLabel: &Text{EN: "units", FR: "unités"},
			},
			{
				ID:          "indoor-coil",
				Name:        Text{EN: "Indoor Unit Coil (Internal System Cleaning)", FR: "Bobine unité intérieure (nettoyage système interne)"},
				Price:       25000,
				Description: Text{EN: "This internal radiator acts as a primary dust trap for the whole home. Removing the buildup at the source keeps air quality high and airflow unrestricted.", FR: "Ce radiateur interne agit comme un piège à poussière principal pour toute la maison."},
				Includes: []Text{
					{EN: "Coil Fin Cleaning", FR: "Nettoyage des ailettes de la bobine"},
					{EN: "Airflow Path Restoration", FR: "Restauration du chemin de flux d'air"},
				},
				UnitLabel: &Text{EN: "units", FR: "unités"},
			},
			{
				ID:          "outdoor-heat-pump",
				Name:        Text{EN: "Outdoor Heat Pump & Condenser Cleaning", FR: "Nettoyage pompe à chaleur extérieure et condenseur"},
				Price:       25000,
				Description: Text{EN: "Deep cleaning of the exterior heat pump fins removes dirt, pollen, and debris that block heat transfer, maximizing energy efficiency.", FR: "Nettoyage en profondeur des ailettes de la pompe à chaleur extérieure pour maximiser l'efficacité énergétique."},
				Includes: []Text{
					{EN: "Coil Fin Cleaning", FR: "Nettoyage des ailettes de la bobine"},
					{EN: "Safe Wet & Dry Process", FR: "Processus humide et sec sécuritaire"},
				},
				UnitLabel: &Text{EN: "units", FR: "unités"},
			},
		},
	},
}

var Extras = []Extra{
	{
		ID:            "extra-uvc",
		Name:          Text{EN: "UV-C Light Kit & Installation", FR: "Kit lumière UV-C et installation"},
		Description:   Text{EN: "Medical-grade UV-C system that continuously sterilizes your air and prevents mold growth. Includes professional installation.", FR: "Système UV-C de qualité médicale qui stérilise l'air en continu et prévient les moisissures. Installation incluse."},
		OriginalPrice: 47500,
		BundlePrice:   35000,
		HasQuantity:   false,
	},
	{
		ID:            "extra-wall-unit",
		Name:          Text{EN: "Wall Unit (Mini-Split)", FR: "Unité murale (Mini-Split)"},
		Description:   Text{EN: "Specialized deep cleaning with foaming antimicrobial agents to sanitize the coil and internal scroll fan.", FR: "Nettoyage en profondeur avec agents antimicrobiens moussants pour assainir la bobine et le ventilateur interne."},
		OriginalPrice: 25000,
		BundlePrice:   20000,
		HasQuantity:   true,
	},
	{
		ID:            "extra-air-exchanger",
		Name:          Text{EN: "Air Exchanger Cleaning", FR: "Nettoyage échangeur d'air"},
		Description:   Text{EN: "Standalone cleaning for HRV/ERV units and dedicated ducts. Ideal for homes with electric heating.", FR: "Nettoyage autonome pour les unités VRC/VRE et les conduits dédiés."},
		OriginalPrice: 35000,
		BundlePrice:   15000,
		HasQuantity:   true,
	},
	{
		ID:            "extra-outdoor-heat-pump",
		Name:          Text{EN: "Outdoor Heat Pump & Condenser Cleaning", FR: "Nettoyage pompe à chaleur extérieure et condenseur"},
		Description:   Text{EN: "Deep cleaning of the exterior heat pump fins to remove dirt, pollen, and debris that block heat transfer.", FR: "Nettoyage en profondeur des ailettes de la pompe à chaleur extérieure."},
		OriginalPrice: 25000,
		BundlePrice:   10000,
		HasQuantity:   true,
	},
	{
		ID:            "extra-furnace-blower",
		Name:          Text{EN: "Furnace / Air Handling Unit (Blower & Motor Cleaning)", FR: "Fournaise / Unité de traitement d'air (nettoyage soufflante et moteur)"},
		Description:   Text{EN: "Dual Brush & Air Wash method strips settled dust and allergens from the blower and motor housing.", FR: "Méthode double brosse et lavage à l'air pour la soufflante et le moteur."},
		OriginalPrice: 25000,
		BundlePrice:   10000,
		HasQuantity:   true,
	},
	{
		ID:            "extra-indoor-coil",
		Name:          Text{EN: "Indoor Unit Coil (Internal System Cleaning)", FR: "Bobine unité intérieure (nettoyage système interne)"},
		Description:   Text{EN: "Cleans the internal radiator that acts as a primary dust trap for the entire home.", FR: "Nettoie le radiateur interne qui piège la poussière de toute la maison."},
		OriginalPrice: 25000,
		BundlePrice:   10000,
		HasQuantity:   true,
	},
	{
		ID:                DryerVentExtraID,
		Name:              Text{EN: "Dryer Vent Cleaning", FR: "Nettoyage conduit sèche-linge"},
		Description:       Text{EN: "Complete fire safety: the entire vent line cleaned from the exterior with non-abrasive technology.", FR: "Sécurité incendie complète: toute la conduite nettoyée depuis l'extérieur."},
		OriginalPrice:     20000,
		BundlePrice:       5000,
		BundlePricePrefix: &Text{EN: "Start", FR: "À partir"},
		HasQuantity:       false,
		DryerLocations: []DryerLocation{
			{ID: "ground", Label: Text{EN: "Ground level (No ladder)", FR: "Niveau du sol (sans échelle)"}, Price: 5000},
			{ID: "under-deck", Label: Text{EN: "Under Deck (3' min clearance)", FR: "Sous la terrasse (3' min)"}, Price: 10000},
			{ID: "small-ladder", Label: Text{EN: "Small Ladder (14 foot)", FR: "Petite échelle (14 pieds)"}, Price: 10000},
			{ID: "big-ladder", Label: Text{EN: "Big Ladder (22 foot)", FR: "Grande échelle (22 pieds)"}, Price: 15000},
			{ID: "rooftop", Label: Text{EN: "Rooftop / Difficult Access (Access Provided)", FR: "Toit / Accès difficile (accès fourni)"}, Price: 17500},
		},
	},
	{
		ID:            "extra-room-scan",
		Name:          Text{EN: "Extra Room Air Scan", FR: "Analyse d'air pièce supplémentaire"},
		Description:   Text{EN: "Laser-based analysis of dust, allergens, and chemical vapors for one additional room, with an individual air quality score.", FR: "Analyse laser de la poussière, des allergènes et des vapeurs chimiques pour une pièce supplémentaire."},
		OriginalPrice: 10000,
		BundlePrice:   3500,
		HasQuantity:   true,
	},
	{
		ID:            "extra-bathroom-fan",
		Name:          Text{EN: "Bathroom Exhaust Fan Cleaning", FR: "Nettoyage ventilateur salle de bain"},
		Description:   Text{EN: "Restores proper airflow to prevent mold and moisture buildup using compressed air and brushing.", FR: "Restaure une circulation d'air adéquate pour prévenir les moisissures et l'humidité."},
		OriginalPrice: 20000,
		BundlePrice:   2500,
		HasQuantity:   true,
	},
}

var Provinces = []SelectOption{
	{Value: "Québec", Label: Text{EN: "Québec", FR: "Québec"}},
	{Value: "Ontario", Label: Text{EN: "Ontario", FR: "Ontario"}},
	{Value: "British Columbia", Label: Text{EN: "British Columbia", FR: "Colombie-Britannique"}},
	{Value: "Alberta", Label: Text{EN: "Alberta", FR: "Alberta"}},
	{Value: "Manitoba", Label: Text{EN: "Manitoba", FR: "Manitoba"}},
	{Value: "Saskatchewan", Label: Text{EN: "Saskatchewan", FR: "Saskatchewan"}},
	{Value: "Nova Scotia", Label: Text{EN: "Nova Scotia", FR: "Nouvelle-Écosse"}},
	{Value: "New Brunswick", Label: Text{EN: "New Brunswick", FR: "Nouveau-Brunswick"}},
	{Value: "Newfoundland and Labrador", Label: Text{EN: "Newfoundland and Labrador", FR: "Terre-Neuve-et-Labrador"}},
	{Value: "Prince Edward Island", Label: Text{EN: "Prince Edward Island", FR: "Île-du-Prince-Édouard"}},
}

// ProvinceTaxes maps a province to its ordered tax lines. Order matters for
// display (federal before provincial); each rate applies to the subtotal
// independently, never compounded.
var ProvinceTaxes = map[string][]TaxLine{
	"Québec":                    {{Label: "TPS (5%)", Rate: 5000}, {Label: "TVQ (9.975%)", Rate: 9975}},
	"Ontario":                   {{Label: "HST (13%)", Rate: 13000}},
	"British Columbia":          {{Label: "GST (5%)", Rate: 5000}, {Label: "PST (7%)", Rate: 7000}},
	"Alberta":                   {{Label: "GST (5%)", Rate: 5000}},
	"Manitoba":                  {{Label: "GST (5%)", Rate: 5000}, {Label: "PST (7%)", Rate: 7000}},
	"Saskatchewan":              {{Label: "GST (5%)", Rate: 5000}, {Label: "PST (6%)", Rate: 6000}},
	"Nova Scotia":               {{Label: "HST (15%)", Rate: 15000}},
	"New Brunswick":             {{Label: "HST (15%)", Rate: 15000}},
	"Newfoundland and Labrador": {{Label: "HST (15%)", Rate: 15000}},
	"Prince Edward Island":      {{Label: "HST (15%)", Rate: 15000}},
}

var UnitLocations = []SelectOption{
	{Value: "standard", Label: Text{EN: "Standard Access (Basement/Garage/Main Floor 6+ ft) - $0.00 Fee", FR: "Accès standard (Sous-sol/Garage/Rez-de-chaussée 6+ pi) - Frais 0,00$"}, Fee: 0},
	{Value: "restricted", Label: Text{EN: "Restricted Access (4-6 ft Ceiling) - $149.99 Fee", FR: "Accès restreint (Plafond 4-6 pi) - Frais 149,99$"}, Fee: 14999},
	{Value: "attic", Label: Text{EN: "Attic Location - $149.99 Fee", FR: "Emplacement au grenier - Frais 149,99$"}, Fee: 14999},
	{Value: "rooftop", Label: Text{EN: "Rooftop Location - $149.99 Fee", FR: "Emplacement sur le toit - Frais 149,99$"}, Fee: 14999},
}

var LanguagePreferences = []SelectOption{
	{Value: "english", Label: Text{EN: "English", FR: "Anglais"}},
	{Value: "french", Label: Text{EN: "Français", FR: "Français"}},
	{Value: "bilingual", Label: Text{EN: "Bilingual", FR: "Bilingue"}},
}

var SpecialRequests = []SelectOption{
	{Value: "none", Label: Text{EN: "No special request", FR: "Aucune demande spéciale"}},
	{Value: "call-before", Label: Text{EN: "Request a phone call prior to arrival", FR: "Demander un appel avant l'arrivée"}},
	{Value: "waitlist", Label: Text{EN: "Place on waitlist for an earlier date", FR: "Mettre sur la liste d'attente"}},
	{Value: "call-waitlist", Label: Text{EN: "Call before arrival AND add to waitlist", FR: "Appel avant arrivée ET liste d'attente"}},
}

// Coupons maps normalized codes to subtotal discounts. Empty until marketing
// hands over the first campaign; unknown codes resolve to zero.
var Coupons = map[string]money.Cents{}
