package catalog

// Category names used by the API, the persisted category_images payloads and
// the compatibility rules.
const (
	CategoryExterior = "exterior"
	CategoryRoof     = "roof"
	CategoryWheels   = "wheels"
	CategoryInterior = "interior"
)

// Option is a single selectable value within a customization category,
// carrying a price delta on top of an item's base price.
type Option struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Image string  `json:"image,omitempty"`
	Price float64 `json:"price"`
}

// Catalog holds the selectable options per category. Build one with Default()
// at startup and pass it to whatever needs lookups; nothing mutates a Catalog
// after construction, so it is safe to share across requests.
type Catalog struct {
	categories map[string][]Option
	order      []string
}

// New builds a Catalog from a category -> options mapping. The given order
// determines how Categories() lists them.
func New(order []string, categories map[string][]Option) *Catalog {
	return &Catalog{categories: categories, order: order}
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ListOptions returns the ordered options for a category, or nil if the
// category does not exist.
func (c *Catalog) ListOptions(category string) []Option {
	return c.categories[category]
}

// FindOption looks up a single option by id within a category. A missing
// category or id is not an error, just a false second return.
func (c *Catalog) FindOption(category, id string) (Option, bool) {
	for _, opt := range c.categories[category] {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Default returns the full BoltBucket option catalog. The data mirrors what
// the seed command inserts, so snapshots embedded in seeded items resolve
// against it.
func Default() *Catalog {
	return New(
		[]string{CategoryExterior, CategoryRoof, CategoryWheels, CategoryInterior},
		map[string][]Option{
			CategoryExterior: {
				{ID: "exterior1", Label: "Silver Flare Metallic", Image: "/assets/images/exteriors/silver_flare_metallic.png", Price: 0},
				{ID: "exterior2", Label: "Arctic White", Image: "/assets/images/exteriors/arctic_white.png", Price: 0},
				{ID: "exterior3", Label: "Red Mist", Image: "/assets/images/exteriors/red_mist.png", Price: 500},
				{ID: "exterior4", Label: "Hypersonic Gray", Image: "/assets/images/exteriors/hypersonic_gray.png", Price: 300},
				{ID: "exterior5", Label: "Amplify Orange", Image: "/assets/images/exteriors/amplify_orange.png", Price: 800},
				{ID: "exterior6", Label: "Caffeine Metallic", Image: "/assets/images/exteriors/caffeine_metallic.png", Price: 600},
				{ID: "exterior7", Label: "Black", Image: "/assets/images/exteriors/black.png", Price: 0},
				{ID: "exterior8", Label: "Torch Red", Image: "/assets/images/exteriors/torch_red.png", Price: 1000},
				{ID: "exterior9", Label: "Accelerate Yellow", Image: "/assets/images/exteriors/accelerate_yellow.png", Price: 2000},
				{ID: "exterior10", Label: "Elkhart Lake Blue", Image: "/assets/images/exteriors/elkhart_lake_blue.png", Price: 1500},
			},
			CategoryRoof: {
				{ID: "roof1", Label: "Carbon Fiber with Body Color", Image: "/assets/images/roofs/carbon_fiber_with_body_color.png", Price: 4000},
				{ID: "roof2", Label: "Carbon Flash Body Color", Image: "/assets/images/roofs/carbon_flash_body_color.avif", Price: 0},
				{ID: "roof3", Label: "Carbon Flash Nacelles", Image: "/assets/images/roofs/carbon_flash_nacelles.png", Price: 3500},
				{ID: "roof4", Label: "Dual Roof", Image: "/assets/images/roofs/dual_roof.avif", Price: 2500},
				{ID: "roof5", Label: "Transparent Roof", Image: "/assets/images/roofs/transparent_roof.avif", Price: 5000},
			},
			CategoryWheels: {
				{ID: "wheel1", Label: "Bronze Forged", Image: "/assets/images/wheels/bronze_forged.avif", Price: 3500},
				{ID: "wheel2", Label: "Carbon Flash Spoke", Image: "/assets/images/wheels/carbon_flash_spoke.avif", Price: 2800},
				{ID: "wheel3", Label: "Carbon Flash with Red Caliper", Image: "/assets/images/wheels/carbon_flash_with_red_caliper.png", Price: 2000},
				{ID: "wheel4", Label: "Edge Blue Spoke", Image: "/assets/images/wheels/edge_blue_spoke.avif", Price: 2200},
				{ID: "wheel5", Label: "Satin Graphite with Red Stripe", Image: "/assets/images/wheels/satin_graphite_with_red_stripe.png", Price: 2600},
				{ID: "wheel6", Label: "Sterling Silver Spoke", Image: "/assets/images/wheels/sterling_silver_spoke.avif", Price: 1800},
				{ID: "wheel7", Label: "Visible Carbon Spoke", Image: "/assets/images/wheels/visible_carbon_spoke.avif", Price: 4000},
			},
			CategoryInterior: {
				{ID: "interior1", Label: "Adrenaline Red", Image: "/assets/images/interiors/adrenaline_red.jpg", Price: 3000},
				{ID: "interior2", Label: "Jet Black", Image: "/assets/images/interiors/jet_black.avif", Price: 0},
				{ID: "interior3", Label: "Sky Cool Gray", Image: "/assets/images/interiors/sky_cool_grey_perforated.jpg", Price: 2500},
				{ID: "interior4", Label: "Strike Yellow", Image: "/assets/images/interiors/natural_dipped.jpg", Price: 3500},
			},
		},
	)
}
