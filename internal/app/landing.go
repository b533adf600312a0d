// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Section is a titled paragraph of the landing page.
type Section struct {
	Title string
	Text  string
}

// Landing holds the marketing copy shown by GET / and by the client's home
// screen.
type Landing struct {
	Product      string
	Headline     string
	Subheadline  string
	Pitch        string
	FeaturesHead string
	Features     []Section
	StepsHead    string
	Steps        []Section
	Footer       string
}

// LandingPage returns the landing copy. Callers get a fresh copy each time.
func LandingPage() Landing {
	return Landing{
		Product:     "Private VPN",
		Headline:    "Control Your Home Appliances",
		Subheadline: "Securely & Remotely",
		Pitch: "Access and control your home devices from anywhere with enterprise-grade security. " +
			"Built on ESP32 technology for reliable, encrypted connections.",
		FeaturesHead: "Why Choose Private VPN?",
		Features: []Section{
			{Title: "Secure Access", Text: "Military-grade encryption protects your connection and data"},
			{Title: "Private Network", Text: "Your own isolated network for complete privacy"},
			{Title: "ESP32 Powered", Text: "Reliable IoT connectivity with low power consumption"},
			{Title: "Remote Control", Text: "Control your devices from anywhere in the world"},
		},
		StepsHead: "How It Works",
		Steps: []Section{
			{Title: "Create Your Account", Text: "Sign up for free and get instant access to your secure dashboard"},
			{Title: "Register Your ESP32 Device", Text: "Connect your ESP32 and home appliances to generate a unique secure ID"},
			{Title: "Control Remotely", Text: "Access your control panel and manage all your devices with a single click"},
		},
		Footer: "© 2024 Private VPN. All rights reserved.",
	}
}
