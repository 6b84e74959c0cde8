package seed

import (
	"musicmerchant/internal/domain"

	"github.com/shopspring/decimal"
)

// catalog is the fixed sample set; ids are assigned when it is applied.
var catalog = []domain.Product{
	{
		Name:        "Moonlight Sonata",
		Description: "Beethoven's famous Piano Sonata No. 14 in C-sharp minor, complete score with fingering notations",
		Price:       decimal.RequireFromString("12.99"),
		Category:    domain.CategorySheetMusic,
		Type:        "Classical Piano",
		Composer:    "Ludwig van Beethoven",
		Difficulty:  domain.DifficultyAdvanced,
		Genre:       "Classical",
		Image:       "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop",
	},
	{
		Name:        "The Real Book - Jazz Standards",
		Description: "Essential collection of 400+ jazz standards with chord symbols and lyrics",
		Price:       decimal.RequireFromString("29.99"),
		Category:    domain.CategorySheetMusic,
		Type:        "Jazz Collection",
		Composer:    "Various Artists",
		Difficulty:  domain.DifficultyIntermediate,
		Genre:       "Jazz",
		Image:       "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=400&h=400&fit=crop",
	},
	{
		Name:        "Canon in D",
		Description: "Pachelbel's beautiful Canon arranged for piano solo with easy-to-read notation",
		Price:       decimal.RequireFromString("8.99"),
		Category:    domain.CategorySheetMusic,
		Type:        "Classical Piano",
		Composer:    "Johann Pachelbel",
		Difficulty:  domain.DifficultyIntermediate,
		Genre:       "Classical",
		Image:       "https://images.unsplash.com/photo-1507838153414-b4b713384a76?w=400&h=400&fit=crop",
	},
	{
		Name:        "Hotel California",
		Description: "Complete guitar tablature and sheet music for The Eagles' classic rock anthem",
		Price:       decimal.RequireFromString("15.99"),
		Category:    domain.CategorySheetMusic,
		Type:        "Rock Guitar",
		Composer:    "The Eagles",
		Difficulty:  domain.DifficultyIntermediate,
		Genre:       "Rock",
		Image:       "https://images.unsplash.com/photo-1564186763535-ebb21ef5277f?w=400&h=400&fit=crop",
	},
	{
		Name:        "Bach Cello Suite No. 1",
		Description: "Complete suite with bowings and fingerings, perfect for intermediate cellists",
		Price:       decimal.RequireFromString("18.99"),
		Category:    domain.CategorySheetMusic,
		Type:        "Classical Cello",
		Composer:    "Johann Sebastian Bach",
		Difficulty:  domain.DifficultyIntermediate,
		Genre:       "Classical",
		Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
	},
	{
		Name:        "Movie Themes Collection",
		Description: "Popular movie themes arranged for piano, including Star Wars, Harry Potter, and more",
		Price:       decimal.RequireFromString("22.99"),
		Category:    domain.CategorySheetMusic,
		Type:        "Piano Collection",
		Composer:    "Various Composers",
		Difficulty:  domain.DifficultyBeginner,
		Genre:       "Film Music",
		Image:       "https://images.unsplash.com/photo-1489599735734-79b4d936543b?w=400&h=400&fit=crop",
	},
	{
		Name:        "Yamaha C40 Classical Guitar",
		Description: "Full-size classical guitar with spruce top and meranti back, perfect for beginners and students",
		Price:       decimal.RequireFromString("149.99"),
		Category:    domain.CategoryInstruments,
		Type:        "Classical Guitar",
		Brand:       "Yamaha",
		Model:       "C40",
		Image:       "https://images.unsplash.com/photo-1516924962500-2b4b3b99ea02?w=400&h=400&fit=crop",
	},
	{
		Name:        "Steinway Model S Grand Piano",
		Description: "Professional 6'2\" grand piano with rich, powerful tone and exceptional touch response",
		Price:       decimal.RequireFromString("89999.99"),
		Category:    domain.CategoryInstruments,
		Type:        "Grand Piano",
		Brand:       "Steinway & Sons",
		Model:       "Model S",
		Image:       "https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?w=400&h=400&fit=crop",
	},
	{
		Name:        "Stradivarius Violin Copy",
		Description: "Hand-crafted violin modeled after the famous Stradivarius, with ebony fittings and case",
		Price:       decimal.RequireFromString("1299.99"),
		Category:    domain.CategoryInstruments,
		Type:        "Violin",
		Brand:       "Master Craftsman",
		Model:       "Strad Copy",
		Image:       "https://images.unsplash.com/photo-1612225330812-01a9c6b355ec?w=400&h=400&fit=crop",
	},
	{
		Name:        "Roland FP-30X Digital Piano",
		Description: "88-key weighted digital piano with SuperNATURAL sound engine and Bluetooth connectivity",
		Price:       decimal.RequireFromString("699.99"),
		Category:    domain.CategoryInstruments,
		Type:        "Digital Piano",
		Brand:       "Roland",
		Model:       "FP-30X",
		Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
	},
	{
		Name:        "Fender Player Stratocaster",
		Description: "Classic electric guitar with alder body, maple neck, and three single-coil pickups",
		Price:       decimal.RequireFromString("849.99"),
		Category:    domain.CategoryInstruments,
		Type:        "Electric Guitar",
		Brand:       "Fender",
		Model:       "Player Stratocaster",
		Image:       "https://images.unsplash.com/photo-1564186763535-ebb21ef5277f?w=400&h=400&fit=crop",
	},
	{
		Name:        "Yamaha YAS-280 Alto Saxophone",
		Description: "Student alto saxophone with gold lacquer finish, includes mouthpiece and case",
		Price:       decimal.RequireFromString("1199.99"),
		Category:    domain.CategoryInstruments,
		Type:        "Alto Saxophone",
		Brand:       "Yamaha",
		Model:       "YAS-280",
		Image:       "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=400&h=400&fit=crop",
	},
	{
		Name:        "Korg TM-50 Tuner Metronome",
		Description: "Compact tuner and metronome combination with large LCD display and built-in microphone",
		Price:       decimal.RequireFromString("24.99"),
		Category:    domain.CategoryAccessories,
		Type:        "Tuner/Metronome",
		Brand:       "Korg",
		Model:       "TM-50",
		Image:       "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop",
	},
	{
		Name:        "Audio-Technica ATH-M50x Headphones",
		Description: "Professional monitor headphones with exceptional clarity and deep, accurate bass response",
		Price:       decimal.RequireFromString("149.99"),
		Category:    domain.CategoryAccessories,
		Type:        "Studio Headphones",
		Brand:       "Audio-Technica",
		Model:       "ATH-M50x",
		Image:       "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=400&h=400&fit=crop",
	},
	{
		Name:        "K&M Music Stand",
		Description: "Professional height-adjustable music stand with perforated steel desk and tripod legs",
		Price:       decimal.RequireFromString("89.99"),
		Category:    domain.CategoryAccessories,
		Type:        "Music Stand",
		Brand:       "K&M",
		Model:       "10810",
		Image:       "https://images.unsplash.com/photo-1507838153414-b4b713384a76?w=400&h=400&fit=crop",
	},
	{
		Name:        "Yamaha Silent Practice Mute",
		Description: "Trumpet practice mute that reduces volume by up to 20dB without affecting intonation",
		Price:       decimal.RequireFromString("45.99"),
		Category:    domain.CategoryAccessories,
		Type:        "Practice Mute",
		Brand:       "Yamaha",
		Model:       "Silent Brass",
		Image:       "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=400&h=400&fit=crop",
	},
	{
		Name:        "SKB Guitar Hard Case",
		Description: "Professional molded guitar case with plush interior and TSA-approved latches",
		Price:       decimal.RequireFromString("199.99"),
		Category:    domain.CategoryAccessories,
		Type:        "Guitar Case",
		Brand:       "SKB",
		Model:       "1SKB-6",
		Image:       "https://images.unsplash.com/photo-1516924962500-2b4b3b99ea02?w=400&h=400&fit=crop",
	},
	{
		Name:        "Shure SM58 Dynamic Microphone",
		Description: "Industry-standard vocal microphone with legendary Shure quality and durability",
		Price:       decimal.RequireFromString("99.99"),
		Category:    domain.CategoryAccessories,
		Type:        "Microphone",
		Brand:       "Shure",
		Model:       "SM58",
		Image:       "https://images.unsplash.com/photo-1489599735734-79b4d936543b?w=400&h=400&fit=crop",
	},
}
