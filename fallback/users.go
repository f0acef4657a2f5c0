// Package fallback holds the static sample catalog shown when the
// backend is unreachable or has no data yet. The catalog never
// changes for the process lifetime; accessors hand out copies.
package fallback

import "github.com/pixelgram/pixelgram/model"

var users = []model.User{
	{ID: "1", Username: "aesthetic.vibes", FullName: "Aesthetic Vibes", ProfilePicture: avatar(1), Followers: 1250, Following: 890, PostsCount: 45},
	{ID: "2", Username: "moonlight.dreams", FullName: "Moonlight Dreams", ProfilePicture: avatar(2), Followers: 2100, Following: 456, PostsCount: 78},
	{ID: "3", Username: "golden.hour", FullName: "Golden Hour", ProfilePicture: avatar(3), Followers: 890, Following: 234, PostsCount: 32},
	{ID: "4", Username: "vintage.soul", FullName: "Vintage Soul", ProfilePicture: avatar(4), Followers: 3400, Following: 567, PostsCount: 89},
	{ID: "5", Username: "ocean.waves", FullName: "Ocean Waves", ProfilePicture: avatar(5), Followers: 1890, Following: 345, PostsCount: 56},
	{ID: "6", Username: "starry.nights", FullName: "Starry Nights", ProfilePicture: avatar(6), Followers: 2567, Following: 678, PostsCount: 123},
	{ID: "7", Username: "nature.lover", FullName: "Nature Lover", ProfilePicture: avatar(7), Verified: true, Followers: 5670, Following: 234, PostsCount: 156},
	{ID: "8", Username: "city.explorer", FullName: "City Explorer", ProfilePicture: avatar(8), Followers: 3210, Following: 567, PostsCount: 89},
	{ID: "9", Username: "coffee.addict", FullName: "Coffee Addict", ProfilePicture: avatar(9), Followers: 1456, Following: 234, PostsCount: 67},
	{ID: "10", Username: "wanderlust.soul", FullName: "Wanderlust Soul", ProfilePicture: avatar(10), Verified: true, Followers: 4567, Following: 345, PostsCount: 123},
	{ID: "11", Username: "foodie.adventures", FullName: "Foodie Adventures", ProfilePicture: avatar(11), Followers: 2890, Following: 456, PostsCount: 89},
	{ID: "12", Username: "fitness.guru", FullName: "Fitness Guru", ProfilePicture: avatar(12), Verified: true, Followers: 6789, Following: 567, PostsCount: 234},
}

var suggested = []model.User{
	{ID: "7", Username: "dreamy.aesthetics", FullName: "Dreamy Aesthetics", ProfilePicture: avatar(7)},
	{ID: "8", Username: "wanderlust.soul", FullName: "Wanderlust Soul", ProfilePicture: avatar(8), Verified: true},
}

// Users returns a copy of the sample accounts
func Users() []model.User {
	out := make([]model.User, len(users))
	copy(out, users)
	return out
}

// SuggestedUsers returns a copy of the sample follow suggestions
func SuggestedUsers() []model.User {
	out := make([]model.User, len(suggested))
	copy(out, suggested)
	return out
}
