// SPDX-FileCopyrightText: Copyright 2026 HostGrid, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

// Route is one decoded route definition. The platform defines the exact
// fields; the accessor treats them as opaque apart from "id" and the "url"
// key injected by RouteByID.
type Route map[string]any

// RouteTable maps resolved URLs to their route definitions. Only available
// at runtime.
type RouteTable map[string]Route

// Routes returns the full route table. It returns ErrNotOnPlatform outside
// the platform and a *BuildPhaseError during build; routes only exist once
// the application is deployed.
func (c *Config) Routes() (RouteTable, error) {
	if !c.valid {
		return nil, ErrNotOnPlatform
	}
	if c.inBuild {
		return nil, &BuildPhaseError{Subject: "routes"}
	}
	return c.routes, nil
}

// RouteByID returns the first route (in decoded document order) whose "id"
// field equals id. The returned route is a copy with its URL injected
// under the "url" key; the stored table is never mutated. Routes without
// an id, or with a null id, never match.
//
// It returns a *RouteNotFoundError when no route carries the id, and the
// same phase errors as Routes.
func (c *Config) RouteByID(id string) (Route, error) {
	routes, err := c.Routes()
	if err != nil {
		return nil, err
	}

	for _, url := range c.routeOrder {
		route := routes[url]
		if route["id"] != id {
			continue
		}
		found := make(Route, len(route)+1)
		for k, v := range route {
			found[k] = v
		}
		found["url"] = url
		return found, nil
	}
	return nil, &RouteNotFoundError{ID: id}
}
