// Package manifest loads the optional course.hcl file describing a
// curriculum checkout: the course-wide compile settings and the ordered
// module list. When no manifest exists, the built-in defaults are used, so
// a bare checkout still builds with zero configuration.
//
// Flag lists are evaluated against a small HCL context exposing host.os
// and host.arch, which lets a manifest vary compiler flags per platform
// without any templating layer.
package manifest
