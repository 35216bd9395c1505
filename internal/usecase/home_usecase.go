package usecase

import (
	"context"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
)

const featuredDoctorCount = 3

var homeHero = dto.Hero{
	Title:       "Your Health,",
	Highlight:   "Our Priority",
	Description: "DocTalk connects women with healthcare professionals for personalized support, guidance, and care. Join our community and take control of your health journey.",
	Image:       "https://images.unsplash.com/photo-1571772996211-2f02974a9f91?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1170&q=80",
	Actions: []dto.Action{
		{Label: "Get Started", Method: "GET", Href: "/auth"},
		{Label: "Learn More", Method: "GET", Href: "/#features"},
	},
}

var homeFeatures = []dto.Feature{
	{Title: "Secure Consultations", Description: "Connect with healthcare professionals through secure video, voice, or chat consultations."},
	{Title: "Appointment Booking", Description: "Easily schedule and manage appointments with your preferred doctors."},
	{Title: "Health Tracking", Description: "Monitor your health metrics, including menstrual cycles and mental wellbeing."},
	{Title: "Community Support", Description: "Join our moderated forums to connect with others and share experiences safely."},
	{Title: "Emergency Alerts", Description: "Access 24/7 emergency support with our SOS system when you need immediate help."},
	{Title: "Private Health Records", Description: "Your medical data is securely stored and accessible only to you and authorized healthcare providers."},
}

var homeTestimonials = []dto.Testimonial{
	{
		Name:    "Jennifer Adams",
		Content: "DocTalk has revolutionized how I manage my health. The ability to consult with specialists from home has saved me so much time and stress.",
		Image:   "https://images.unsplash.com/photo-1580489944761-15a19d654956?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=761&q=80",
		Rating:  5,
	},
	{
		Name:    "Michelle Torres",
		Content: "The emergency SOS feature gave me peace of mind during a health scare. I received immediate guidance from a doctor who helped me through a stressful situation.",
		Image:   "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=764&q=80",
		Rating:  5,
	},
	{
		Name:    "Sophia Lee",
		Content: "The community forums helped me connect with other women experiencing similar health challenges. The support and shared wisdom have been incredibly valuable.",
		Image:   "https://images.unsplash.com/photo-1534751516642-a1af1ef26a56?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=689&q=80",
		Rating:  4,
	},
}

// HomeUsecase assembles the landing page.
type HomeUsecase interface {
	GetHome(ctx context.Context) *dto.HomeView
}

type homeUsecase struct {
	log           *logrus.Logger
	doctorUsecase DoctorUsecase
}

func NewHomeUsecase(log *logrus.Logger, doctorUsecase DoctorUsecase) HomeUsecase {
	return &homeUsecase{
		log:           log,
		doctorUsecase: doctorUsecase,
	}
}

// GetHome never fails: when the directory cannot be read the page is served
// without featured doctors.
func (u *homeUsecase) GetHome(ctx context.Context) *dto.HomeView {
	doctors, err := u.doctorUsecase.GetFeaturedDoctors(ctx, featuredDoctorCount)
	if err != nil {
		u.log.Warnf("Failed to load featured doctors: %+v", err)
		doctors = []dto.DoctorResponse{}
	}

	hero := homeHero
	if _, signedIn := middleware.GetUserIDFromContext(ctx); signedIn {
		hero.Actions = []dto.Action{
			{Label: "Find a Doctor", Method: "GET", Href: directoryPath},
			homeHero.Actions[1],
		}
	}

	return &dto.HomeView{
		Hero:         hero,
		Features:     homeFeatures,
		Doctors:      doctors,
		Testimonials: homeTestimonials,
		Emergency:    dto.Action{Label: "Emergency SOS", Method: "POST", Href: "/api/v1/emergency/alerts"},
	}
}

// Navigation returns the nav links for a visitor. Appointments and profile
// appear only with a session.
func Navigation(signedIn bool) []dto.NavLink {
	links := []dto.NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Find Doctors", Href: directoryPath},
	}
	if signedIn {
		return append(links,
			dto.NavLink{Label: "My Appointments", Href: "/appointments"},
			dto.NavLink{Label: "Profile", Href: "/profile"},
		)
	}
	return append(links, dto.NavLink{Label: "Sign In", Href: "/auth"})
}
