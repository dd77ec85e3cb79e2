// Copyright (c) 2026 Goshawk Logistics
// SPDX-License-Identifier: MIT

package repo

import (
	"path/filepath"

	"github.com/goshawklogistics/goshawk-go/internal/model"
)

// Hard-coded content served when neither the database nor the JSON documents
// hold a record. This copy is the site as originally shipped; editing through
// the admin panel shadows it, it is never overwritten.

// DefaultHomeContent returns the built-in home page copy.
func DefaultHomeContent() model.HomeContent {
	return model.HomeContent{
		Headline:     "Logistics that moves your business forward",
		Subtext:      "Premium freight brokerage and transportation solutions. From full truckload to cross-border shipping, we deliver reliability, transparency, and 24/7 support.",
		HeroImage:    "",
		CTAPrimary:   "Request a Quote",
		CTASecondary: "Talk to Dispatch",
	}
}

// DefaultAboutContent returns the built-in about page copy.
func DefaultAboutContent() model.AboutContent {
	return model.AboutContent{
		Badge:             "About Goshawk",
		Headline:          "Building Trust Through Excellence",
		Subtext:           "Goshawk Logistics is a premium freight brokerage dedicated to delivering reliable, transparent, and efficient transportation solutions.",
		MissionTitle:      "Our Mission",
		MissionParagraph1: "At Goshawk Logistics, our mission is simple: to make freight shipping seamless, reliable, and transparent.",
		MissionParagraph2: "We connect shippers with verified carriers across North America.",
		ValuesTitle:       "Our Values",
		ValuesSubtext:     "The principles that guide everything we do",
		CTATitle:          "Let's Work Together",
		CTAText:           "Ready to experience the Goshawk difference? Get in touch with our team today.",
		Values:            []model.AboutValue{},
	}
}

// DefaultContactContent returns the built-in contact page copy.
func DefaultContactContent() model.ContactContent {
	return model.ContactContent{
		Headline:  "Get In Touch",
		Subtext:   "Have questions? Need a quote? Our team is here to help. Reach out anytime.",
		FormTitle: "Send Us a Message",
		ContactInfo: []model.ContactInfoItem{
			{Label: "Phone", Value: "(800) 555-1234", Href: href("tel:+18005551234")},
			{Label: "Email", Value: "info@goshawklogistics.com", Href: href("mailto:info@goshawklogistics.com")},
			{Label: "Coverage", Value: "Nationwide (USA, Canada, Mexico)"},
			{Label: "Support", Value: "24/7 Dispatch & Tracking"},
		},
	}
}

// DefaultServices returns the built-in freight service catalog.
func DefaultServices() []model.Service {
	return []model.Service{
		{
			Slug:             "full-truckload",
			Title:            "Full Truckload",
			ShortDescription: "Dedicated truckload shipping for large shipments requiring exclusive use of a trailer.",
			Description:      "Full Truckload (FTL) shipping provides dedicated transportation for large shipments that require the exclusive use of a trailer. Ideal for businesses shipping palletized goods, bulk commodities, or time-sensitive freight that needs direct routing without stops.",
			Icon:             "🚚",
			Features: []string{
				"Direct point-to-point delivery",
				"No freight consolidation delays",
				"Faster transit times",
				"Reduced handling and damage risk",
				"Flexible scheduling options",
			},
			Benefits: []string{
				"Expedited delivery for time-sensitive shipments",
				"Lower per-unit shipping costs for large volumes",
				"Enhanced security with dedicated equipment",
				"Real-time tracking and updates",
			},
		},
		{
			Slug:             "reefer",
			Title:            "Reefer (Refrigerated)",
			ShortDescription: "Temperature-controlled transportation for perishable goods and sensitive cargo.",
			Description:      "Reefer transportation ensures your temperature-sensitive cargo maintains the required temperature throughout transit. Our network of certified refrigerated carriers handles everything from fresh produce to pharmaceuticals with precision temperature control.",
			Icon:             "❄️",
			Features: []string{
				"Temperature-controlled trailers",
				"Real-time temperature monitoring",
				"Expert handling of perishables",
				"Compliance with food safety regulations",
				"Flexible temperature ranges",
			},
			Benefits: []string{
				"Protection of product integrity",
				"Extended shelf life for perishables",
				"Compliance with FDA and USDA regulations",
				"Reduced spoilage and waste",
			},
		},
		{
			Slug:             "ltl-freight",
			Title:            "LTL Freight",
			ShortDescription: "Less-than-truckload shipping for smaller shipments that share trailer space.",
			Description:      "Less-Than-Truckload (LTL) shipping is the cost-effective solution for shipments that don't require a full trailer. Your freight shares space with other shipments, making it ideal for small to medium-sized businesses looking to optimize shipping costs.",
			Icon:             "📦",
			Features: []string{
				"Cost-effective for smaller shipments",
				"Flexible pickup and delivery options",
				"Access to extensive carrier network",
				"Transparent pricing and quotes",
				"Multiple service levels available",
			},
			Benefits: []string{
				"Lower shipping costs for partial loads",
				"Flexible scheduling",
				"Access to nationwide coverage",
				"Professional handling and tracking",
			},
		},
		{
			Slug:             "flatbed",
			Title:            "Flatbed",
			ShortDescription: "Open-deck transportation for oversized, heavy, or irregularly shaped cargo.",
			Description:      "Flatbed shipping provides open-deck transportation for cargo that requires top or side loading. Perfect for construction materials, machinery, oversized equipment, and freight that doesn't fit in standard enclosed trailers.",
			Icon:             "🚛",
			Features: []string{
				"Open-deck design for easy loading",
				"Heavy-duty capacity for oversized loads",
				"Flexible securing options",
				"Expert handling of specialized cargo",
				"Wide range of trailer sizes",
			},
			Benefits: []string{
				"Accommodates oversized and heavy freight",
				"Easy loading and unloading access",
				"Versatile for various cargo types",
				"Specialized equipment and expertise",
			},
		},
		{
			Slug:             "drayage",
			Title:            "Drayage",
			ShortDescription: "Short-haul container transportation between ports, rail yards, and distribution centers.",
			Description:      "Drayage services handle the critical first and last mile of intermodal shipping. We connect your containers from ports and rail yards to nearby distribution centers, warehouses, or manufacturing facilities with speed and precision.",
			Icon:             "🚢",
			Features: []string{
				"Port and rail yard expertise",
				"Fast turnaround times",
				"Container handling and positioning",
				"Customs documentation support",
				"24/7 availability at major ports",
			},
			Benefits: []string{
				"Reduced port congestion delays",
				"Seamless intermodal connections",
				"Expert port operations knowledge",
				"Faster container movement",
			},
		},
		{
			Slug:             "power-only",
			Title:            "Power Only",
			ShortDescription: "Tractor-only service for customers who own or lease their own trailers.",
			Description:      "Power Only service provides tractor units without trailers for customers who own or lease their own equipment. This flexible solution allows you to maximize your trailer utilization while leveraging our driver network and dispatch expertise.",
			Icon:             "🔌",
			Features: []string{
				"Tractor-only service",
				"Flexible scheduling",
				"Experienced drivers",
				"Dispatch and logistics support",
				"Cost-effective for trailer owners",
			},
			Benefits: []string{
				"Maximize trailer utilization",
				"Reduce equipment downtime",
				"Access to professional drivers",
				"Flexible operational model",
			},
		},
		{
			Slug:             "intermodal",
			Title:            "Intermodal",
			ShortDescription: "Multi-modal transportation combining rail and truck for efficient long-distance shipping.",
			Description:      "Intermodal shipping combines the efficiency of rail transportation with the flexibility of trucking. This cost-effective solution is ideal for long-distance shipments, reducing fuel costs and environmental impact while maintaining reliable service.",
			Icon:             "🚂",
			Features: []string{
				"Rail and truck combination",
				"Cost-effective long-distance shipping",
				"Reduced carbon footprint",
				"Reliable transit times",
				"Container and trailer options",
			},
			Benefits: []string{
				"Lower shipping costs for long hauls",
				"Environmental sustainability",
				"Reliable service schedules",
				"Access to major rail networks",
			},
		},
		{
			Slug:             "cross-border",
			Title:            "Cross Border",
			ShortDescription: "Seamless freight transportation between the United States, Canada, and Mexico.",
			Description:      "Cross-border shipping requires specialized expertise in customs, documentation, and international regulations. Our experienced team handles all aspects of cross-border logistics, ensuring smooth transit and compliance with all international trade requirements.",
			Icon:             "🌎",
			Features: []string{
				"US, Canada, and Mexico coverage",
				"Customs documentation expertise",
				"Compliance with trade regulations",
				"Bilingual support team",
				"Dedicated cross-border specialists",
			},
			Benefits: []string{
				"Seamless international shipping",
				"Reduced border delays",
				"Expert customs handling",
				"Comprehensive documentation support",
			},
		},
	}
}

// DefaultFAQs returns the built-in FAQ entries, tagged by audience.
func DefaultFAQs() []model.FAQ {
	return []model.FAQ{
		{
			Category: "shippers",
			Question: "How quickly can I get a quote?",
			Answer:   "We typically provide quotes within 2-4 hours during business hours, and same-day quotes are available for urgent shipments. Submit your request through our online form or contact our dispatch team directly.",
		},
		{
			Category: "shippers",
			Question: "What information do I need to provide for a quote?",
			Answer:   "To provide an accurate quote, we need pickup and delivery locations, shipment weight and dimensions, equipment type required, commodity description, and preferred pickup/delivery dates. Additional details help us provide the most competitive pricing.",
		},
		{
			Category: "shippers",
			Question: "Do you offer real-time tracking?",
			Answer:   "Yes, all shipments include real-time tracking updates. You'll receive automated notifications at key milestones, and you can check status anytime through our tracking portal or by contacting dispatch.",
		},
		{
			Category: "shippers",
			Question: "What happens if my shipment is delayed?",
			Answer:   "We proactively monitor all shipments and communicate any potential delays immediately. Our team works with carriers to resolve issues quickly and keeps you informed throughout the process. We prioritize finding solutions to minimize impact.",
		},
		{
			Category: "shippers",
			Question: "Are you licensed and insured?",
			Answer:   "Yes, we are a licensed freight broker with active MC# and maintain comprehensive insurance coverage. All carriers in our network are verified, licensed, and insured according to DOT requirements.",
		},
		{
			Category: "shippers",
			Question: "Can you handle time-sensitive shipments?",
			Answer:   "Absolutely. We specialize in expedited and time-sensitive freight. Our network includes carriers equipped for hotshot and expedited services, and we prioritize urgent shipments with dedicated dispatch support.",
		},
		{
			Category: "carriers",
			Question: "How do I become a carrier partner?",
			Answer:   "Complete our carrier setup form with your MC#, DOT#, insurance information, and equipment details. Our team reviews applications within 1-2 business days. Once approved, you'll receive access to our load board and dispatch communications.",
		},
		{
			Category: "carriers",
			Question: "What are your payment terms?",
			Answer:   "We offer competitive payment terms with quick pay options available. Standard payment is within 30 days, with expedited payment options for qualified carriers. All payments are processed reliably and on schedule.",
		},
		{
			Category: "carriers",
			Question: "What types of loads do you typically have?",
			Answer:   "We handle a diverse range of freight including Full Truckload, Reefer, LTL, Flatbed, Drayage, Intermodal, and Cross-Border shipments. Load types vary by region and season, with consistent opportunities across our service areas.",
		},
		{
			Category: "carriers",
			Question: "How do I access available loads?",
			Answer:   "Once approved as a carrier partner, you'll receive load opportunities via email, text, or through our carrier portal. Our dispatch team also proactively contacts carriers for specific lanes and equipment needs.",
		},
	}
}

// FAQs returns the FAQ list, preferring a faqs.json document in the data
// directory over the built-in entries. There is no database table for FAQs.
func FAQs(dataDir string) []model.FAQ {
	var list []model.FAQ
	if err := readDocument(filepath.Join(dataDir, faqsFile), &list); err == nil {
		return list
	}
	return DefaultFAQs()
}

func href(s string) *string {
	return &s
}
