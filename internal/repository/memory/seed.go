package memory

import "github.com/harvfi/ecudecaalumni2/internal/domain"

// SeedMembers returns the alumni spotlight seed data. A process restart
// (the "page reload") always starts from this roster.
func SeedMembers() []*domain.Member {
	return []*domain.Member{
		{
			ID:          "1",
			Name:        "Sarah Jenkins",
			GradYear:    2018,
			Company:     "Google",
			Role:        "Senior Product Marketing Manager",
			ImageURL:    "https://picsum.photos/400/400?random=1",
			Bio:         "Former ECU DECA President (2017-2018). Passionate about mentorship and tech marketing.",
			Achievement: "Led the global launch campaign for the latest Pixel device features.",
		},
		{
			ID:          "2",
			Name:        "Marcus Thorne",
			GradYear:    2020,
			Company:     "Deloitte",
			Role:        "Strategy Consultant",
			ImageURL:    "https://picsum.photos/400/400?random=2",
			Bio:         "ICDC Winner 2019. Helping organizations navigate digital transformation.",
			Achievement: "Recently promoted to Senior Consultant in record time.",
		},
		{
			ID:          "3",
			Name:        "Emily Chen",
			GradYear:    2015,
			Company:     "East Carolina University",
			Role:        "Adjunct Professor",
			ImageURL:    "https://picsum.photos/400/400?random=3",
			Bio:         "Returned to ECU to teach entrepreneurship and guide the next generation.",
			Achievement: "Received the \"Alumni of the Year\" award for service to the department.",
		},
	}
}

// SeedEvents returns the upcoming-events seed data.
func SeedEvents() []*domain.Event {
	return []*domain.Event{
		{
			ID:          "1",
			Title:       "Annual Alumni Homecoming Tailgate",
			Date:        "2024-10-12",
			Time:        "11:00 AM - 3:00 PM",
			Location:    "Dowdy-Ficklen Stadium, Greenville, NC",
			Description: "Join us for food, drinks, and networking before the Pirates take on the field! Look for the purple DECA tent near Gate 4.",
			Category:    domain.CategorySocial,
			ImageURL:    "https://picsum.photos/800/400?random=10",
		},
		{
			ID:          "2",
			Title:       "Executive Leadership Panel: Navigating Corporate",
			Date:        "2024-11-05",
			Time:        "6:00 PM - 7:30 PM",
			Location:    "Main Campus Student Center & Virtual",
			Description: "A hybrid event featuring alumni executives from Fortune 500 companies sharing their career journeys.",
			Category:    domain.CategoryWorkshop,
			ImageURL:    "https://picsum.photos/800/400?random=11",
		},
		{
			ID:          "3",
			Title:       "Winter Networking Gala",
			Date:        "2024-12-14",
			Time:        "7:00 PM - 10:00 PM",
			Location:    "The Greenville Convention Center",
			Description: "Our black-tie optional end-of-year celebration. Tickets required.",
			Category:    domain.CategoryNetworking,
			ImageURL:    "https://picsum.photos/800/400?random=12",
		},
	}
}

// SeedNews returns the chapter-news seed data.
func SeedNews() []*domain.NewsItem {
	return []*domain.NewsItem{
		{
			ID:       "1",
			Title:    "ECU DECA Chapter Breaks Records at CDC",
			Summary:  "The on-campus chapter took home 15 trophies at this years Career Development Conference, with 25 students qualifying for ICDC.",
			Date:     "2024-03-15",
			Author:   "Chapter President",
			Category: "Chapter News",
		},
		{
			ID:       "2",
			Title:    "Alumni Mentorship Program Launching Fall 2024",
			Summary:  "We are pairing 50 alumni with current students. Sign up now to give back and help guide the next generation of business leaders.",
			Date:     "2024-08-01",
			Author:   "Alumni Board",
			Category: "Initiatives",
		},
	}
}
