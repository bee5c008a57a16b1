// models/content.go
package models

// Address is the salon's postal address as stored in the content store.
type Address struct {
	Street   string `bson:"street" json:"street"`
	Suburb   string `bson:"suburb" json:"suburb"`
	City     string `bson:"city" json:"city"`
	Postcode string `bson:"postcode" json:"postcode"`
}

type OpeningHours struct {
	Days  string `bson:"days" json:"days"`
	Hours string `bson:"hours" json:"hours"`
}

type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
}

// SiteSettings is the singleton settings document driving the hero, about
// section, footer and structured data.
type SiteSettings struct {
	ID              string         `bson:"id" json:"id"`
	BusinessName    string         `bson:"businessName" json:"businessName"`
	Tagline         string         `bson:"tagline" json:"tagline"`
	Phone           string         `bson:"phone" json:"phone"`
	Email           string         `bson:"email" json:"email"`
	Address         Address        `bson:"address" json:"address"`
	OpeningHours    []OpeningHours `bson:"openingHours" json:"openingHours"`
	SocialLinks     SocialLinks    `bson:"socialLinks" json:"socialLinks"`
	AboutHeading    string         `bson:"aboutHeading" json:"aboutHeading"`
	AboutParagraphs []string       `bson:"aboutParagraphs" json:"aboutParagraphs"`
	HeroHeadline    string         `bson:"heroHeadline" json:"heroHeadline"`
}

// Service is a single bookable treatment. Price is a free-text label such as
// "$45" or "from $40-60".
type Service struct {
	Key   string `bson:"key" json:"key"`
	Name  string `bson:"name" json:"name"`
	Price string `bson:"price" json:"price"`
	Note  string `bson:"note,omitempty" json:"note,omitempty"`
}

// ServiceCategory groups related services, e.g. "Lash Studio".
type ServiceCategory struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Description string    `bson:"description" json:"description"`
	PriceFrom   string    `bson:"priceFrom" json:"priceFrom"`
	Order       int       `bson:"order" json:"order"`
	Services    []Service `bson:"services" json:"services"`
}

// FindService returns the service with the given key, if the category has it.
func (c *ServiceCategory) FindService(key string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].Key == key {
			return &c.Services[i], true
		}
	}
	return nil, false
}

type Testimonial struct {
	ID      string `bson:"id" json:"id"`
	Quote   string `bson:"quote" json:"quote"`
	Author  string `bson:"author" json:"author"`
	Service string `bson:"service" json:"service"`
	Order   int    `bson:"order" json:"order"`
}

// GalleryImage references a portfolio image by its media public id. URL is
// resolved at read time and never stored.
type GalleryImage struct {
	ID       string `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	PublicID string `bson:"publicId" json:"publicId"`
	Alt      string `bson:"alt" json:"alt"`
	URL      string `bson:"-" json:"url,omitempty"`
	Order    int    `bson:"order" json:"order"`
}
