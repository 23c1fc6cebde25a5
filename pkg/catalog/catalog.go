// Package catalog holds the static reference data the planner UI works with:
// candidate locations, cuisines, food moods, feelings and packing-checklist
// items. Nothing here is persisted; lookups that miss are a normal condition
// and return nil.
package catalog

import (
	"weekend-planner/domain"
	"weekend-planner/entities"
)

var Locations = []domain.Location{
	{
		ID:          "second_home",
		Name:        "Nhà thứ 2",
		Category:    "safe_place",
		Description: "Chỗ ý ý.",
		Tags:        []string{"quen thuộc", "nghỉ ngơi", "an toàn", "không áp lực", "base"},
	},
	{
		ID:          "aeon_xuan_thuy",
		Name:        "AEON Mall Xuân Thủy",
		Category:    "mall",
		Description: "Đi dạo, ăn uống, xem phim, v...v.",
		Tags:        []string{"trong nhà", "ăn uống", "xem phim", "đi dạo"},
	},
	{
		ID:          "lotte_center",
		Name:        "Lotte Center",
		Category:    "mall",
		Description: "View cao, đổi không khí.",
		Tags:        []string{"view", "chụp ảnh", "buổi tối"},
	},
	{
		ID:          "cinema",
		Name:        "Rạp chiếu phim",
		Category:    "entertainment",
		Description: "Xem phim nếu muốn yên tĩnh.",
		Tags:        []string{"xem phim", "ngồi lâu", "ít nói"},
	},
	{
		ID:          "quiet_cafe",
		Name:        "Quán cà phê yên tĩnh",
		Category:    "cafe",
		Description: "Ngồi nói chuyện, v...v.",
		Tags:        []string{"cafe", "trò chuyện", "nhẹ"},
	},
	{
		ID:          "park_walk",
		Name:        "Công viên / đi bộ",
		Category:    "outdoor",
		Description: "Đi dạo nhẹ, không cần nói nhiều.",
		Tags:        []string{"ngoài trời", "đi bộ", "nhẹ"},
	},
	{
		ID:          "photobooth",
		Name:        "Photobooth",
		Category:    "activity",
		Description: "Chụp vài tấm cho vui.",
		Tags:        []string{"chụp ảnh", "kỷ niệm", "vui"},
	},
	{
		ID:          "game_center",
		Name:        "Game center",
		Category:    "activity",
		Description: "Chơi game nhẹ, giải trí.",
		Tags:        []string{"game", "giải trí", "vui"},
	},
	{
		ID:          "street_food",
		Name:        "Ăn vặt / ăn khuya",
		Category:    "food",
		Description: "Ăn nhẹ khi đói.",
		Tags:        []string{"ăn uống", "linh hoạt", "khuya"},
	},
	{
		ID:          "random_walk",
		Name:        "Đi đâu đó không định trước",
		Category:    "free",
		Description: "Đi rồi tính tiếp.",
		Tags:        []string{"tự do", "không kế hoạch"},
	},
	{
		ID:          "bookstore",
		Name:        "Hiệu sách / Thư viện",
		Category:    "quiet",
		Description: "Ngồi đọc sách, yên tĩnh.",
		Tags:        []string{"yên tĩnh", "đọc sách", "ngồi lâu"},
	},
	{
		ID:          "art_gallery",
		Name:        "Triển lãm / Bảo tàng",
		Category:    "culture",
		Description: "Xem tranh, đi chậm.",
		Tags:        []string{"văn hóa", "yên tĩnh", "chụp ảnh"},
	},
	{
		ID:          "picnic",
		Name:        "Dã ngoại nhẹ",
		Category:    "outdoor",
		Description: "Ngồi ngoài trời, ăn nhẹ, thư giãn.",
		Tags:        []string{"ngoài trời", "ăn uống", "thư giãn"},
	},
}

var Cuisines = []domain.Cuisine{
	{
		ID:          "vietnamese",
		Name:        "Việt Nam",
		Description: "Phở, bún chả, bánh mì, cơm tấm...",
		Tags:        []string{"quen thuộc", "đậm đà", "đa dạng"},
	},
	{
		ID:          "japanese",
		Name:        "Nhật Bản",
		Description: "Sushi, ramen, udon, tempura...",
		Tags:        []string{"tinh tế", "thanh đạm", "tươi ngon"},
	},
	{
		ID:          "korean",
		Name:        "Hàn Quốc",
		Description: "BBQ, kimchi, bibimbap, tteokbokki...",
		Tags:        []string{"đậm vị", "nóng hổi", "đa dạng"},
	},
	{
		ID:          "thai",
		Name:        "Thái Lan",
		Description: "Tom yum, pad thai, green curry...",
		Tags:        []string{"cay nồng", "chua ngọt", "đậm đà"},
	},
	{
		ID:          "chinese",
		Name:        "Trung Hoa",
		Description: "Dim sum, lẩu, mì xào, vịt quay...",
		Tags:        []string{"phong phú", "đa dạng", "nhiều món"},
	},
	{
		ID:          "western",
		Name:        "Âu Mỹ",
		Description: "Pizza, pasta, burger, steak...",
		Tags:        []string{"quen thuộc", "no bụng", "dễ ăn"},
	},
	{
		ID:          "italian",
		Name:        "Ý",
		Description: "Pasta, pizza, risotto, tiramisu...",
		Tags:        []string{"lãng mạn", "tinh tế", "no bụng"},
	},
	{
		ID:          "french",
		Name:        "Pháp",
		Description: "Bánh mì, croissant, escargot...",
		Tags:        []string{"tinh tế", "lãng mạn", "đặc biệt"},
	},
}

var FoodMoods = []domain.FoodMood{
	{
		ID:     "casual",
		Label:  "Thoải Mái & Tiện Lợi",
		Flavor: "Những món ăn đường phố, đồ ăn nhanh yêu thích",
	},
	{
		ID:     "peaceful",
		Label:  "Thanh Đạm & Nhẹ Nhàng",
		Flavor: "Chút salad tươi, trái cây hay đồ uống thanh mát",
	},
	{
		ID:     "shared",
		Label:  "Sẻ Chia & Kết Nối",
		Flavor: "Lẩu nóng hổi hoặc những món ăn cùng nhau nhâm nhi",
	},
	{
		ID:     "rest",
		Label:  "Nạp Lại Năng Lượng",
		Flavor: "Đồ ăn vặt tại Second Home khi chúng mình đang lười",
	},
}

var Feelings = []domain.Feeling{
	{
		ID:          "quiet",
		Label:       "Cần Sự Yên Tĩnh",
		Description: "Cuối tuần này, mình muốn một ngày thật chậm, không tiếng ồn, chỉ có sự hiện diện của đôi ta.",
	},
	{
		ID:          "active",
		Label:       "Muốn Đi Đây Đó",
		Description: "Cuối tuần này, mình muốn cùng em lang thang phố phường, ngắm nhìn nhịp sống ngoài kia.",
	},
	{
		ID:          "comfortable",
		Label:       "Chỉ Cần Thoải Mái",
		Description: "Cuối tuần này, dù là đi đâu hay làm gì, miễn là chúng mình cảm thấy tự nhiên nhất.",
	},
	{
		ID:          "social",
		Label:       "Muốn Chút Vui Vẻ",
		Description: "Cuối tuần này, một chút hoạt náo, trò chơi hay những nơi đông vui để nạp lại năng lượng.",
	},
}

// DefaultChecklistItems is the packing list every fresh plan starts from.
var DefaultChecklistItems = []entities.ChecklistItem{
	{ID: "phone", Label: "Điện thoại & sạc dự phòng", Category: "essential"},
	{ID: "wallet", Label: "Ví tiền", Category: "essential"},
	{ID: "keys", Label: "Chìa khóa", Category: "essential"},
	{ID: "umbrella", Label: "Ô/dù", Category: "weather"},
	{ID: "sunscreen", Label: "Kem chống nắng", Category: "weather"},
	{ID: "water", Label: "Nước uống", Category: "comfort"},
	{ID: "tissues", Label: "Khăn giấy", Category: "comfort"},
}

func GetLocationByID(id string) *domain.Location {
	for i := range Locations {
		if Locations[i].ID == id {
			return &Locations[i]
		}
	}
	return nil
}

func GetCuisineByID(id string) *domain.Cuisine {
	for i := range Cuisines {
		if Cuisines[i].ID == id {
			return &Cuisines[i]
		}
	}
	return nil
}

func GetFoodMoodByID(id string) *domain.FoodMood {
	for i := range FoodMoods {
		if FoodMoods[i].ID == id {
			return &FoodMoods[i]
		}
	}
	return nil
}
