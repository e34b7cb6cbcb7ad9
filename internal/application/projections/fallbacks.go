package projections

// Launch content. These values render whenever the document store has no
// published replacement, so the public site never paints an empty section.

const mediaBase = "https://res.cloudinary.com/dns2kdqbi/image/upload"

const (
	fallbackSanctuaryTitle  = "Haircoolest Barbershop"
	fallbackSanctuaryHeader = mediaBase + "/v1743495808/background_t4qr2s.jpg"
	fallbackSanctuaryImage  = mediaBase + "/v1743495830/sanctuary_jgjelp.jpg"

	fallbackRitualTitle      = "Ritual Menu's"
	fallbackRitualSubtitle   = "Temukan layanan dan program membership eksklusif dari Haircoolest."
	fallbackRitualHeader     = mediaBase + "/v1743495830/ritual_menus_i3wneu.jpg"
	fallbackBookingTitle     = "Booking & Ask Us for Price"
	fallbackBookingCtaText   = "Hubungi Kami"

	fallbackCloudLabTitle  = ".CLOUD LAB"
	fallbackCloudLabHeader = mediaBase + "/v1743495812/cloud_lab_nevnl7.jpg"

	fallbackCaveTitle      = "Cave Haircoolest"
	fallbackCaveHeader     = mediaBase + "/v1743495812/cave_oyho6r.jpg"
	fallbackCaveBioImage   = mediaBase + "/v1743495811/cave-logo_vxj0rz.png"
	fallbackCaveTagline    = "Pantang Pulang Sebelum Kenyang"
	fallbackCaveBioText    = "Cave Haircoolest adalah tempat nongkrong eksklusif dengan nuansa modern yang vibrant. Kami menggabungkan konsep barbershop dan cafe untuk memberikan pengalaman yang unik."
	fallbackCaveDisclaimer = "Cave Haircoolest adalah 1st Dystopian Modern Metal Cafe di Indonesia. Tempat ini tidak hanya tentang makanan, tetapi juga tentang pengalaman yang tak terlupakan."

	fallbackEmail      = "contact@haircoolest.com"
	fallbackInstagram  = "https://www.instagram.com/haircoolest/?igsh=MXF6Zjk1emZhbm5tcA%3D%3D#"
	fallbackMapKuningan = "https://g.co/kgs/G5jjQpA"
	fallbackMapPetojo   = "https://g.co/kgs/NA6Xgrf"
	fallbackPhone       = "+62 812 3456 7890"
	fallbackWhatsApp    = "https://wa.me/+6282116388585"
	fallbackBookNowURL  = "https://api.whatsapp.com/send?phone=6285811065697&text=Saya+ingin+book+seat+untuk+hari+dan+jam"
)

func fallbackBarbers() []BarberView {
	return []BarberView{
		{Name: "Sulthan", Position: "hair specialist", ImageURL: mediaBase + "/v1743495809/barber-1_h2uihg.jpg"},
		{Name: "Zaidan", Position: "hair specialist", ImageURL: mediaBase + "/v1743495810/barber-2_olem5s.jpg"},
		{Name: "Rafa", Position: "hair specialist", ImageURL: mediaBase + "/v1743495810/barber-3_juyaon.jpg"},
		{Name: "Rafi", Position: "hair specialist", ImageURL: mediaBase + "/v1743495809/barber-1_h2uihg.jpg"},
		{Name: "James", Position: "hair specialist", ImageURL: mediaBase + "/v1743495810/barber-2_olem5s.jpg"},
		{Name: "Yehezkiel", Position: "hair specialist", ImageURL: mediaBase + "/v1743495810/barber-3_juyaon.jpg"},
	}
}

func fallbackResultGallery() []string {
	return []string{
		mediaBase + "/v1743495812/1_boqhbl.jpg",
		mediaBase + "/v1743495813/2_vdjdbt.jpg",
		mediaBase + "/v1743495827/3_fofv7b.jpg",
		mediaBase + "/v1743495827/4_opkajm.jpg",
		mediaBase + "/v1743495827/5_z6xils.jpg",
		mediaBase + "/v1743495827/6_sgdr3p.jpg",
		mediaBase + "/v1743495827/7_idel9s.jpg",
		mediaBase + "/v1743495828/8_uex6cd.jpg",
	}
}

func fallbackAwards() []AwardView {
	return []AwardView{
		{Name: "Bank Syariah Indonesia", ImageURL: mediaBase + "/v1743495808/bsi_jekbk6.png"},
		{Name: "Bank Permata", ImageURL: mediaBase + "/v1743495808/bank_permata_ybxod4.png"},
		{Name: "Bank BRI", ImageURL: mediaBase + "/v1743495809/bri_u12euf.png"},
		{Name: "Pertamina", ImageURL: mediaBase + "/v1743495809/pertamina_h5j7il.png"},
		{Name: "Djarum Superpreneur", ImageURL: mediaBase + "/v1743495809/djarums_uperpreneur_rsnagn.png"},
		{Name: "FIFA World Cup 2023 Spain", ImageURL: mediaBase + "/v1743495810/fwc_2023_sotc0t.png"},
		{Name: "HIS ERHA", ImageURL: mediaBase + "/v1743495810/hiserha_logo_smue0y.png"},
		{Name: "Sekolah Bunda Mulia", ImageURL: mediaBase + "/v1743495810/sbm_logo_qof5m8.png"},
		{Name: "Universitas Bunda Mulia", ImageURL: mediaBase + "/v1743495810/ubm_logo_tysul7.png"},
	}
}

func fallbackServices() []ServiceView {
	return []ServiceView{
		{Name: "Classic Haircut", Description: "Potongan rambut klasik dengan teknik tradisional.", ImageURL: mediaBase + "/v1743495830/1_fsnv5w.jpg"},
		{Name: "Beard Grooming", Description: "Perawatan janggut lengkap dengan trimming dan styling.", ImageURL: mediaBase + "/v1743495830/2_gjmboc.jpg"},
		{Name: "Hair Styling", Description: "Styling rambut dengan produk berkualitas dan premium.", ImageURL: mediaBase + "/v1743495831/3_yffr9y.jpg"},
	}
}

func fallbackMemberships() []MembershipView {
	return []MembershipView{
		{Duration: "3 Bulan", Benefits: []string{
			"Potongan rambut gratis setiap bulan",
			"Diskon 20% untuk produk Haircoolest",
			"Akses eksklusif ke event Haircoolest",
		}},
		{Duration: "6 Bulan", Benefits: []string{
			"Potongan rambut gratis setiap bulan",
			"Diskon 30% untuk produk Haircoolest",
			"1x free beard grooming",
			"Akses eksklusif ke event Haircoolest",
		}},
		{Duration: "1 Tahun", Benefits: []string{
			"Potongan rambut gratis setiap bulan",
			"Diskon 40% untuk produk Haircoolest",
			"2x free beard grooming",
			"Akses eksklusif ke event Haircoolest",
			"Free Haircoolest merchandise",
		}},
	}
}

func fallbackProducts() []ProductView {
	return []ProductView{
		{Name: "Aqua Gel", ImageURL: mediaBase + "/v1743495828/1_risbem.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
		{Name: "Charcoal Clay", ImageURL: mediaBase + "/v1743495828/1_pppoqk.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
		{Name: "Greasers Pomade", ImageURL: mediaBase + "/v1743495831/1_haq2xx.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
		{Name: "Deep Charged", ImageURL: mediaBase + "/v1743495829/1_emzzdm.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
		{Name: "Sub Zero Tonic", ImageURL: mediaBase + "/v1743495829/1_wrcfic.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
		{Name: "Hair Dust", ImageURL: mediaBase + "/v1743495829/1_wrcfic.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
		{Name: "Tough Wax", ImageURL: mediaBase + "/v1743495830/1_o2ses2.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
	}
}

func fallbackPartners() []ProductView {
	return []ProductView{
		{Name: "Aqua Gel", ImageURL: mediaBase + "/v1743495828/aqua-gel_tpkmnq.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
		{Name: "Charcoal Clay", ImageURL: mediaBase + "/v1743495829/charcoal-clay_jlv7iu.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
		{Name: "Greasers Pomade", ImageURL: mediaBase + "/v1743495829/greasers-pomade_gcmmwu.jpg", Tokped: "https://www.tokopedia.com/", Shopee: "https://shopee.co.id/"},
	}
}

func fallbackPlayground() []PlaygroundView {
	return []PlaygroundView{
		{Name: "Play Station", ImageURL: mediaBase + "/v1743495811/playstation_egqckg.jpg"},
		{Name: "Game Arcade", ImageURL: mediaBase + "/v1743495811/game_arcade_xyudd6.webp"},
	}
}

func fallbackCaveGallery() []string {
	return []string{
		mediaBase + "/v1743495811/1_bt3bao.jpg",
		mediaBase + "/v1743495811/2_y6ctgc.jpg",
		mediaBase + "/v1743495811/3_fyhlgm.jpg",
	}
}

// HairstyleView is a static price-list entry on the home page.
type HairstyleView struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	Price       string `json:"price"`
}

func fallbackHairstyles() []HairstyleView {
	return []HairstyleView{
		{Name: "Classic Pompadour", Description: "A timeless high-volume style with sleek backcombing.", Price: "Rp25.000"},
		{Name: "Undercut Fade", Description: "Sharp contrast between short sides and a voluminous top.", Price: "Rp30.000"},
		{Name: "Textured Crop", Description: "A modern casual cut with rough textured layers.", Price: "Rp28.000"},
		{Name: "Slicked Back", Description: "A polished, sophisticated look with gel or pomade.", Price: "Rp27.000"},
		{Name: "Side Part Combover", Description: "Classic side part with a neat, professional touch.", Price: "Rp26.000"},
		{Name: "Buzz Cut", Description: "Minimalist and low-maintenance style for a clean look.", Price: "Rp20.000"},
		{Name: "Modern Quiff", Description: "A stylish and voluminous cut for a bold appearance.", Price: "Rp29.000"},
		{Name: "French Crop", Description: "A low-maintenance, textured cut with a short fringe.", Price: "Rp24.000"},
		{Name: "Crew Cut", Description: "A clean and professional military-inspired hairstyle.", Price: "Rp22.000"},
	}
}
