package memory

import (
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/identity"
)

// Catalog is a complete set of canonical records.
type Catalog struct {
	Categories     []*domain.Category
	Authors        []*domain.Author
	Articles       []*domain.Article
	BreakingNews   []*domain.BreakingNews
	Advertisements []*domain.Advertisement
}

type sampleCategory struct {
	name, slug, color string
}

var sampleCategories = []sampleCategory{
	{"News", "news", "#E60000"},
	{"Politics", "politics", "#1A1A1A"},
	{"Business", "business", "#0066CC"},
	{"Sports", "sports", "#FF6600"},
	{"Entertainment", "entertainment", "#CC00CC"},
	{"World", "world", "#006633"},
	{"Opinion", "opinion", "#663399"},
	{"Technology", "technology", "#0099CC"},
	{"Health", "health", "#009966"},
	{"Elections", "elections", "#CC6600"},
	{"Regional", "regional", "#996633"},
	{"Crime", "crime", "#990000"},
	{"Education", "education", "#336699"},
	{"Arts & Culture", "arts-culture", "#CC3366"},
	{"Explainers", "explainers", "#666699"},
}

type sampleAuthor struct {
	name, slug, avatar, role string
}

var sampleAuthors = []sampleAuthor{
	{"Kwame Asante", "kwame-asante", "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop", "Senior Political Correspondent"},
	{"Ama Serwaa", "ama-serwaa", "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop", "Business Editor"},
	{"Kofi Mensah", "kofi-mensah", "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop", "Sports Analyst"},
	{"Abena Osei", "abena-osei", "https://images.unsplash.com/photo-1531123897727-8f129e1688ce?w=100&h=100&fit=crop", "Entertainment & Showbiz Reporter"},
	{"Yaw Boateng", "yaw-boateng", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop", "Technology Editor"},
	{"Efua Mensimah", "efua-mensimah", "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=100&h=100&fit=crop", "Health Correspondent"},
}

type sampleArticle struct {
	title, slug, excerpt, image string
	category, author            int
	breaking, featured          bool
	readTime                    int
	tags                        []string
}

// Articles are listed newest first; each is one hour older than the previous.
var sampleArticles = []sampleArticle{
	{"Ghana's Economy Shows Strong Recovery Signs as GDP Growth Exceeds Expectations", "ghana-economy-recovery-gdp-growth",
		"The Bank of Ghana reports a 6.2% GDP growth in Q3, surpassing analyst predictions and signaling a robust economic recovery following global challenges.",
		"https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?w=1200&h=800&fit=crop", 2, 1, true, true, 5, []string{"Economy", "GDP", "Bank of Ghana"}},
	{"Parliament Passes Historic Climate Change Bill with Bipartisan Support", "parliament-climate-change-bill",
		"In a landmark decision, Ghana's Parliament unanimously approves comprehensive climate legislation aimed at reducing carbon emissions by 45% by 2035.",
		"https://images.unsplash.com/photo-1529107386315-e1a2ed48a620?w=800&h=600&fit=crop", 1, 0, false, true, 4, []string{"Parliament", "Climate", "Legislation"}},
	{"Black Stars Captain Named African Footballer of the Year", "black-stars-captain-african-footballer-year",
		"Ghana's national team captain receives the prestigious CAF award following an exceptional season with both club and country.",
		"https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=800&h=600&fit=crop", 3, 2, false, true, 3, []string{"Black Stars", "Football", "CAF Awards"}},
	{"New Tech Hub Opens in Accra, Creating 5,000 Jobs for Young Ghanaians", "tech-hub-accra-jobs",
		"The state-of-the-art technology center aims to position Ghana as West Africa's leading innovation destination, with partnerships from Google and Microsoft.",
		"https://images.unsplash.com/photo-1497366216548-37526070297c?w=800&h=600&fit=crop", 7, 4, false, true, 4, []string{"Technology", "Jobs", "Innovation"}},
	{"Regional Leaders Gather in Accra for ECOWAS Summit on Security", "ecowas-summit-accra",
		"West African heads of state convene to discuss regional security, economic integration, and democratic governance across the sub-region.",
		"https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&h=600&fit=crop", 5, 0, false, false, 6, []string{"ECOWAS", "Diplomacy", "West Africa"}},
	{"Cocoa Farmers Benefit from New Government Support Program in Western Region", "cocoa-farmers-government-support",
		"The Ministry of Agriculture launches a comprehensive initiative to boost cocoa production and improve farmer livelihoods across cocoa-growing regions.",
		"https://images.unsplash.com/photo-1500595046743-cd271d694d30?w=800&h=600&fit=crop", 0, 1, false, false, 4, []string{"Agriculture", "Cocoa", "Farmers"}},
	{"Sarkodie and Stonebwoy Headline Sold-Out Accra Music Festival", "sarkodie-stonebwoy-accra-music-festival",
		"Over 30,000 fans pack the Accra Sports Stadium for the biggest music event of the year, featuring top Ghanaian and African artistes.",
		"https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=800&h=600&fit=crop", 4, 3, false, false, 3, []string{"Music", "Showbiz", "Sarkodie", "Stonebwoy"}},
	{"Ghana Health Service Launches Nationwide Malaria Vaccination Campaign", "ghs-malaria-vaccination-campaign",
		"The expanded programme targets children under five in all 16 regions, with WHO support and funding from the Global Fund.",
		"https://images.unsplash.com/photo-1584515933487-779824d29309?w=800&h=600&fit=crop", 8, 5, false, false, 5, []string{"Health", "Malaria", "Vaccination", "GHS"}},
	{"EC Announces Dates for 2028 District Assembly Elections", "ec-district-assembly-elections-2028",
		"The Electoral Commission outlines the roadmap for the upcoming district-level elections, including voter registration timelines.",
		"https://images.unsplash.com/photo-1494172961521-33799ddd43a5?w=800&h=600&fit=crop", 9, 0, false, false, 4, []string{"Elections", "EC", "District Assembly"}},
	{"Ashanti Region Roads Get Major Facelift Under New Infrastructure Plan", "ashanti-region-roads-infrastructure",
		"The government commits GH₵2.5 billion to rehabilitate and construct key road networks across the Ashanti Region.",
		"https://images.unsplash.com/photo-1545558014-8692077e9b5c?w=800&h=600&fit=crop", 10, 1, false, false, 4, []string{"Ashanti Region", "Roads", "Infrastructure"}},
	{"Ghana's Education System Needs a Complete Overhaul: Here's Why", "ghana-education-system-overhaul",
		"A veteran educator argues that the current curriculum fails to prepare students for the demands of a modern, technology-driven economy.",
		"https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=800&h=600&fit=crop", 6, 0, false, false, 7, []string{"Opinion", "Education", "Reform"}},
	{"Police Arrest Suspected Armed Robbers in Kumasi After Dramatic Chase", "police-arrest-armed-robbers-kumasi",
		"Three suspects apprehended following a high-speed pursuit through the Kumasi metropolis. Stolen items recovered.",
		"https://images.unsplash.com/photo-1589994965851-a8f479c573a9?w=800&h=600&fit=crop", 11, 0, false, false, 3, []string{"Crime", "Police", "Kumasi"}},
	{"WAEC Releases 2026 WASSCE Results: Pass Rate Improves to 68%", "waec-wassce-results-2026",
		"The West African Examinations Council reports a significant improvement in pass rates, crediting the Free SHS policy and teacher training investments.",
		"https://images.unsplash.com/photo-1523050854058-8df90110c476?w=800&h=600&fit=crop", 12, 5, false, false, 4, []string{"Education", "WAEC", "WASSCE"}},
	{"Kente Weaving Gets UNESCO Intangible Cultural Heritage Recognition", "kente-weaving-unesco-recognition",
		"Ghana's iconic Kente cloth tradition receives global recognition, boosting cultural tourism and artisan livelihoods in the Volta and Ashanti regions.",
		"https://images.unsplash.com/photo-1590735213920-68192a487bc2?w=800&h=600&fit=crop", 13, 3, false, false, 5, []string{"Culture", "Kente", "UNESCO", "Heritage"}},
	{"Hearts of Oak Edge Kotoko in Thrilling Super Clash at Baba Yara", "hearts-kotoko-super-clash",
		"A late winner from the Phobians seals a dramatic 2-1 victory in the Ghana Premier League's biggest fixture of the season.",
		"https://images.unsplash.com/photo-1508098682722-e99c43a406b2?w=800&h=600&fit=crop", 3, 2, false, false, 3, []string{"GPL", "Hearts of Oak", "Kotoko", "Football"}},
	{"Ghana Signs $3 Billion Deal for New Offshore Oil Block Development", "ghana-offshore-oil-block-deal",
		"The Petroleum Commission finalizes agreements with international partners to develop the Cape Three Points Deep Water block.",
		"https://images.unsplash.com/photo-1513828583688-c52646db42da?w=800&h=600&fit=crop", 2, 1, false, false, 5, []string{"Oil", "Energy", "Petroleum"}},
}

var sampleBreaking = []struct {
	headline, url string
}{
	{"BREAKING: Ghana's Economy Shows Strong Recovery Signs as GDP Growth Exceeds Expectations", "/article/ghana-economy-recovery-gdp-growth"},
	{"URGENT: Parliament Passes Historic Climate Change Bill with Bipartisan Support", "/article/parliament-climate-change-bill"},
	{"LIVE: Black Stars Captain Named African Footballer of the Year", "/article/black-stars-captain-african-footballer-year"},
	{"UPDATE: EC Announces Dates for 2028 District Assembly Elections", "/article/ec-district-assembly-elections-2028"},
}

var sampleAds = []struct {
	name, image, url string
	position         domain.AdPosition
}{
	{"Homepage leaderboard", "https://images.unsplash.com/photo-1557804506-669a67965ba0?w=970&h=90&fit=crop", "/advertise", domain.AdPositionBanner},
	{"Sidebar rectangle", "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=300&h=250&fit=crop", "/advertise", domain.AdPositionSidebar},
	{"In-article native", "https://images.unsplash.com/photo-1551434678-e076c223a692?w=728&h=90&fit=crop", "/advertise", domain.AdPositionInArticle},
}

// SampleCatalog builds the bundled demonstration catalog with timestamps
// relative to now.
func SampleCatalog(now time.Time) Catalog {
	now = now.UTC()
	var catalog Catalog

	for _, c := range sampleCategories {
		catalog.Categories = append(catalog.Categories, &domain.Category{
			ID:    identity.CategoryID(c.slug),
			Name:  c.name,
			Slug:  c.slug,
			Color: stringPtr(c.color),
		})
	}

	for _, a := range sampleAuthors {
		catalog.Authors = append(catalog.Authors, &domain.Author{
			ID:     identity.AuthorID(a.slug),
			Name:   a.name,
			Slug:   a.slug,
			Avatar: stringPtr(a.avatar),
			Role:   stringPtr(a.role),
		})
	}

	for i, a := range sampleArticles {
		category := *catalog.Categories[a.category]
		author := *catalog.Authors[a.author]
		readTime := a.readTime
		catalog.Articles = append(catalog.Articles, &domain.Article{
			ID:            identity.ArticleID(a.slug),
			Title:         a.title,
			Slug:          a.slug,
			Excerpt:       a.excerpt,
			Content:       a.excerpt + "\n\n*Filed by " + author.Name + ".*",
			FeaturedImage: a.image,
			Category:      &category,
			Author:        &author,
			PublishedAt:   now.Add(-time.Duration(i+1) * time.Hour),
			IsBreaking:    a.breaking,
			IsFeatured:    a.featured,
			ReadTime:      &readTime,
			Tags:          append([]string{}, a.tags...),
		})
	}

	for i, b := range sampleBreaking {
		catalog.BreakingNews = append(catalog.BreakingNews, &domain.BreakingNews{
			ID:        identity.BreakingNewsID(b.headline),
			Headline:  b.headline,
			URL:       stringPtr(b.url),
			Timestamp: now.Add(-time.Duration(i) * time.Minute),
		})
	}

	for _, ad := range sampleAds {
		catalog.Advertisements = append(catalog.Advertisements, &domain.Advertisement{
			ID:       identity.AdvertisementID(ad.name),
			Name:     ad.name,
			Image:    ad.image,
			URL:      ad.url,
			Position: ad.position,
			IsActive: true,
		})
	}

	return catalog
}

func stringPtr(value string) *string {
	return &value
}
