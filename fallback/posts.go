package fallback

import (
	"strconv"

	"github.com/pixelgram/pixelgram/model"
)

func avatar(n int) string {
	return "https://i.pravatar.cc/150?img=" + strconv.Itoa(n)
}

func image(n int) string {
	return "https://picsum.photos/seed/pixelgram" + strconv.Itoa(n) + "/600"
}

// comment builds one sample comment authored by users[author]
func comment(id string, author int, text string, age string) model.Comment {
	by := users[author]
	return model.Comment{ID: id, User: &by, Text: text, CreatedAt: age}
}

// post builds one sample post authored by users[author]
func post(id string, author int, img int, caption string, likes int64, age string, location string, comments ...model.Comment) model.Post {
	by := users[author]
	return model.Post{
		ID:        id,
		User:      &by,
		ImageURL:  image(img),
		Image:     image(img),
		Caption:   caption,
		Likes:     model.Count(likes),
		Comments:  comments,
		CreatedAt: age,
		Location:  location,
	}
}

var posts = []model.Post{
	post("1", 0, 1, "Golden hour magic at the beach. Nothing beats this peaceful moment watching the sun dip into the ocean.", 1234, "3h", "Malibu Beach, CA",
		comment("1", 1, "Amazing shot!", "2h"),
		comment("2", 2, "Love this view!", "1h")),
	post("2", 1, 2, "Morning fuel for another coding session. Clean setup, strong coffee, and endless possibilities ahead.", 892, "5h", "San Francisco, CA",
		comment("3", 0, "That setup looks clean!", "30m"),
		comment("4", 3, "What IDE are you using?", "15m")),
	post("3", 2, 3, "Reached the summit after 3 hours of hiking. The view from up here makes every step worth it.", 2156, "8h", "Rocky Mountains, CO",
		comment("5", 4, "Incredible view! Where is this?", "2h"),
		comment("6", 5, "Need to visit this place!", "1h")),
	post("4", 3, 4, "Made this pizza from scratch tonight. Fresh basil from the garden and homemade dough - perfection.", 567, "12h", "New York, NY",
		comment("7", 0, "Looks delicious! Recipe please?", "45m")),
	post("5", 4, 5, "The city comes alive at night. Captured this skyline from my favorite rooftop spot downtown.", 1789, "1d", "Tokyo, Japan",
		comment("8", 2, "Beautiful capture!", "3h"),
		comment("9", 1, "Love the composition!", "2h")),
	post("6", 5, 6, "Saturday morning at the farmers market. Supporting local vendors and getting the freshest ingredients.", 934, "2d", "Portland, OR",
		comment("10", 3, "Love supporting local!", "4h")),
	post("7", 6, 7, "Deep in the forest where phone signals disappear and peace begins. Nature is the best therapist.", 2341, "6h", "Redwood National Park",
		comment("11", 2, "So peaceful!", "1h"),
		comment("12", 4, "Need this right now", "30m")),
	post("8", 7, 8, "Sunday brunch done right. Fluffy pancakes, fresh berries, and maple syrup - weekend perfection.", 1456, "4h", "Brooklyn, NY",
		comment("13", 5, "This looks incredible!", "2h"),
		comment("14", 0, "Recipe please!", "1h")),
	post("9", 0, 9, "Cozy Sunday afternoon with a good book and perfectly brewed coffee. Simple pleasures are the best.", 987, "7h", "Home",
		comment("15", 1, "Perfect Sunday vibes!", "3h"),
		comment("16", 3, "What are you reading?", "2h")),
	post("10", 1, 1, "Another breathtaking sunset from this Greek island. Every evening here feels like a painting come to life.", 3245, "9h", "Santorini, Greece",
		comment("17", 0, "Stunning colors!", "4h"),
		comment("18", 2, "Take me there!", "3h")),
	post("11", 2, 2, "Manhattan from street level. The architecture here tells stories of ambition reaching toward the sky.", 1678, "11h", "Manhattan, NY",
		comment("19", 5, "Love the perspective!", "5h"),
		comment("20", 1, "Amazing shot!", "4h")),
	post("12", 3, 3, "Just finished an intense workout session. Pushing limits and feeling stronger with each rep.", 2134, "13h", "Local Gym",
		comment("21", 3, "You inspire me!", "6h"),
		comment("22", 0, "Keep it up!", "5h")),
	post("13", 4, 4, "Spent hours at the modern art museum today. This piece stopped me in my tracks - pure creative genius.", 1892, "15h", "MoMA, NYC",
		comment("23", 2, "Beautiful piece!", "7h"),
		comment("24", 4, "So inspiring!", "6h")),
	post("14", 5, 5, "Burning the midnight oil on this new project. When inspiration strikes, sleep can wait.", 1234, "17h", "Home Office",
		comment("25", 5, "What are you building?", "8h"),
		comment("26", 3, "Keep grinding!", "7h")),
	post("15", 6, 6, "Spring has arrived and the flower market is bursting with color. These tulips brightened my entire day.", 2567, "19h", "Flower Market",
		comment("27", 1, "So pretty!", "9h"),
		comment("28", 0, "Love the colors!", "8h")),
	post("16", 7, 7, "Lost in the beauty of nature. Every trail leads to a new adventure.", 1890, "21h", "Mountain Trail",
		comment("29", 2, "Breathtaking!", "10h")),
	post("17", 0, 8, "Exploring hidden gems in the city. Architecture that tells a thousand stories.", 2234, "1d", "Downtown",
		comment("30", 3, "Love this perspective!", "11h")),
	post("18", 1, 9, "Peaceful moments by the water. Sometimes you just need to pause and breathe.", 1567, "1d", "Lakeside",
		comment("31", 4, "So serene!", "12h")),
	post("19", 2, 1, "Chasing sunsets and making memories. Life is beautiful when you take time to notice.", 2890, "1d", "Beach",
		comment("32", 5, "Stunning capture!", "13h")),
	post("20", 3, 2, "Urban vibes and city lights. There is magic in every corner of this concrete jungle.", 1678, "2d", "City Center",
		comment("33", 6, "Amazing shot!", "14h")),
	post("21", 8, 3, "Morning coffee ritual. The perfect start to any productive day.", 2345, "2d", "Local Cafe",
		comment("34", 1, "Need this energy!", "15h")),
	post("22", 9, 4, "Adventure awaits around every corner. Pack light, travel far, dream big.", 3456, "3d", "Mountain Peak",
		comment("35", 2, "Take me with you!", "16h")),
	post("23", 10, 5, "Homemade pasta night. Nothing beats the satisfaction of cooking from scratch.", 1987, "3d", "Home Kitchen",
		comment("36", 3, "Recipe please!", "17h")),
	post("24", 11, 6, "Push your limits. Every rep counts, every drop of sweat is progress.", 2876, "3d", "Gym",
		comment("37", 4, "Motivation!", "18h")),
	post("25", 0, 7, "Forest therapy session. Sometimes the best medicine is a walk among trees.", 2134, "4d", "Forest Trail",
		comment("38", 5, "So peaceful!", "19h")),
	post("26", 1, 8, "Street art tells stories. Every wall is a canvas waiting for expression.", 1765, "4d", "Art District",
		comment("39", 6, "Love this art!", "20h")),
	post("27", 2, 9, "Quiet moments by the lake. Reflection time is essential for the soul.", 2543, "4d", "Lakeside Park",
		comment("40", 7, "Beautiful view!", "21h")),
	post("28", 8, 1, "Golden hour magic never gets old. Chasing light and capturing moments.", 3210, "5d", "Beach Sunset",
		comment("41", 9, "Perfect timing!", "22h")),
	post("29", 9, 2, "City nights and neon lights. The urban jungle comes alive after dark.", 1876, "5d", "Downtown",
		comment("42", 10, "Amazing atmosphere!", "23h")),
	post("30", 10, 3, "Fresh ingredients make all the difference. Farm to table is the way to go.", 2987, "5d", "Farmers Market",
		comment("43", 11, "So fresh!", "1d")),
}

// Posts returns a copy of the sample feed, so callers can append
// or filter without touching the shared catalog
func Posts() []model.Post {
	out := make([]model.Post, len(posts))
	copy(out, posts)
	return out
}
